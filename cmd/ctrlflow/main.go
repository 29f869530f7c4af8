// Command ctrlflow is a thin cobra driver over the interpreter tower
// (SPEC_FULL.md §4.14): it builds one of the §8.2 demo components, runs it
// to completion or first error, reports the final active tree, and maps
// the error kind (if any) to a distinct process exit code.
package main

import "os"

func main() {
	os.Exit(Execute())
}
