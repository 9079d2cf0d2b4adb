package c // want `testdata/config.yaml: assertions\[0\]: T does not satisfy all of \[fmt.Stringer\]: missing \[fmt.Stringer\]`

import "fmt"

type T struct{}

var _ = fmt.Sprint
