package editor_test

import (
	"fmt"

	"github.com/jsonedit/jsonedit/editor"
	"github.com/jsonedit/jsonedit/transform"
)

func Example() {
	p := editor.New()
	p.AddSet(".name", "renamed", editor.SetAny)
	p.AddSet(".tags[]", "extra", editor.SetAny)
	p.AddRemove(".debug", editor.RemoveAny)

	tr, err := transform.New(p)
	if err != nil {
		panic(err)
	}

	out, err := tr.Bytes([]byte(`{"name":"orig","debug":true,"tags":["a"]}`))
	if err != nil {
		panic(err)
	}
	fmt.Print(string(out))
	// Output: {"name":"renamed","tags":["a","extra"]}
}

func ExampleInsert() {
	doc, err := editor.Insert([]any{"a", "c"}, "[1]", "b")
	if err != nil {
		panic(err)
	}
	fmt.Println(doc)
	// Output: [a b c]
}
