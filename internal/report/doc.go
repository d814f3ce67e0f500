// Package report renders the project catalog into its text artifacts.
//
// This package contains writers for each output:
//   - InventoryWriter: the CSV file inventory
//   - InventoryConsoleWriter: the terminal summary printed after the inventory
//   - DeliveryWriter: the plain-text delivery summary
//   - MarkdownWriter: the inventory as a Markdown document
//   - JSONWriter: the catalog itself for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter. WriteFile stores rendered
// content and describes it as a model.Artifact.
package report
