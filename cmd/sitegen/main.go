// Package main provides the sitegen command line.
package main

func main() {
	Execute()
}
