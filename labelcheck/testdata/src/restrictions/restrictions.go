package restrictions

//typelabel:derive
//typelabel:label = "iface"
type Iface interface{ Do() } // want "cannot derive Label for interface type Iface"

//typelabel:derive
//typelabel:label = "ptr"
type Ptr *int // want "cannot derive Label for pointer type Ptr"

type Real struct{}

//typelabel:derive
//typelabel:label = "alias"
type Alias = Real // want "cannot derive Label for alias Alias"

//typelabel:derive
//typelabel:label = "manual"
type Manual struct{} // want "already declares method TypeLabel"

func (Manual) TypeLabel() string { return "manual" }

//typelabel:derive
//typelabel:label = "field"
type Field struct { // want "has field TypeLabel"
	TypeLabel string
}

//typelabel:derive
//typelabel:label = "taken"
type Taken struct{} // want "TakenLabel is already declared"

const TakenLabel = "taken"
