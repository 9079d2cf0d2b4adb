package good

import "fmt"

// Name is a string that prints itself.
type Name string

func (n Name) String() string { return string(n) }

var _ fmt.Stringer = Name("")

//bound:all Name: fmt.Stringer
//bound:one Name: fmt.Stringer, error
