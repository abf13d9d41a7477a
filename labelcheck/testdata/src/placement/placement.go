package placement

//typelabel:derive
// Misplaced has docs in between.
//typelabel:label = "misplaced" // want "must be on the line immediately after"
type Misplaced struct{}

//typelabel:derive
//typelabel:label = "first"
//typelabel:label = "second" // want "duplicate label annotation"
type Duplicate struct{}

//typelabel:derive
//typelabel:label = "twice"
//typelabel:derive // want "duplicate //typelabel:derive request"
type Twice struct{}

//typelabel:label = "orphan" // want "without a //typelabel:derive request on type NoDerive"
type NoDerive struct{}

//typelabel:derive
//typelabel:lable = "typo" // want "unknown typelabel directive"
type Typo struct{} // want "missing label annotation"

//typelabel:derive // want "must annotate a package level type declaration"
func NotAType() {}

func local() {
	//typelabel:derive // want "must annotate a package level type declaration"
	type inner struct{}
	_ = inner{}
}
