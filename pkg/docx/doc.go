// Package docx is a helper library for common Word (.docx) editing tasks:
// creating a blank document, appending styled paragraphs, bulleted list
// items, two-column tables and checkboxes, defining paragraph styles,
// reading and writing custom metadata properties, searching and highlighting
// text, validating document structure, and copying templates.
//
// # Usage
//
// Create a document, add content, save:
//
//	doc := docx.New()
//	doc.AddHeading("Report", "Heading1")
//	doc.AddParagraph("Hello, world!", docx.Bold())
//	doc.AddListItem(1, "first item")
//	doc.AddTable([][2]string{{"Key", "Value"}, {"answer", "42"}})
//	if err := doc.SaveAs("report.docx"); err != nil {
//		log.Fatal(err)
//	}
//
// Custom metadata properties are typed variants:
//
//	doc.SetCustomProperty("Reviewed", docx.YesNo(true))
//	doc.SetCustomProperty("Revision", docx.Integer(3))
//
// # Ownership and concurrency
//
// A Document is a scoped resource owned by one goroutine: acquire it with
// New or Open, mutate it, and call Save or SaveAs before discarding it;
// nothing reaches disk earlier. No operation depends on prior call order
// beyond the accumulated document tree.
package docx
