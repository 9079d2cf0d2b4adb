package files

import "testing"

//bound:all Mode: error
func TestMode(t *testing.T) {
	if Mode(1).String() != "1" {
		t.Fail()
	}
}
