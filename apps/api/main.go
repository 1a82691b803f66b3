package main

// The API is a local companion for a GPA tracker UI: it serves a single academic record.
func main() {
	startWithDig()
}
