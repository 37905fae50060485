// Command dawn is the terminal WYSIWYG Markdown editor's entry point.
package main

func main() {
	Execute()
}
