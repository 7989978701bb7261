/*
File    : snlc/rewrite/bridge_test.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBridge_PrefixesKeywordsOnly(t *testing.T) {
	got := Bridge(`program p begin write(1) end.`)
	want := `r#program p r#begin r#write(1) r#end.`
	assert.Equal(t, want, got)
}

func TestBridge_LeavesIdentifiersAndLiteralsAlone(t *testing.T) {
	got := Bridge(`program p var integer num; begin write(num) end.`)
	assert.NotContains(t, got, "r#num")
	assert.Contains(t, got, "r#var")
	assert.Contains(t, got, "r#integer")
}

func TestBridge_DropsComments(t *testing.T) {
	got := Bridge(`program p { a comment } begin write(1) end.`)
	assert.NotContains(t, got, "comment")
}

func TestBridge_IsDeterministic(t *testing.T) {
	src := `program p begin write(1) end.`
	first := Bridge(src)
	second := Bridge(src)
	assert.Equal(t, first, second)
}
