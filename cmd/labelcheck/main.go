// Command labelcheck reports mistakes in typelabel annotations. It can be
// run standalone or as go vet -vettool=$(which labelcheck).
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/typelabel/labelcheck"
)

func main() {
	singlechecker.Main(labelcheck.Analyzer)
}
