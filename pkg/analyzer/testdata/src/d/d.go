package d

type I interface{ i() }

//assert:all T: I // want `T does not satisfy all of \[I\]`
//bound:all T: I
type T struct{}
