// SPDX-License-Identifier: Apache-2.0
package kir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalDefaultsToPrivate(t *testing.T) {
	out := mustTranslate(t, "x: num\n")
	assert.Contains(t, out, "  %svdecl(x, %num, %private)")
}

func TestEventRendering(t *testing.T) {
	out := mustTranslate(t, "Transfer: __log__({_from: indexed(address), _to: indexed(address), _value: num256})\n")
	assert.Contains(t, out,
		"  %event(Transfer, %eparam(_from, %address, true) %eparam(_to, %address, true) %eparam(_value, %num256, false))")
}

func TestEmptyModule(t *testing.T) {
	out := mustTranslate(t, "")
	assert.Equal(t, "%pgm(, , , \n)", out)
}

func TestBucketOrderFullProgram(t *testing.T) {
	source := `Transfer: __log__({_from: indexed(address), _value: num256})

balances: num256[address]
owner: public(address)

@public
def __init__():
    self.owner = msg.sender

@public
@payable
def deposit():
    self.balances[msg.sender] = num256_add(self.balances[msg.sender], as_num256(msg.value))
    log.Transfer(0x0000000000000000000000000000000000000000, as_num256(msg.value))
`

	expected := `%pgm(
  %event(Transfer, %eparam(_from, %address, true) %eparam(_value, %num256, false)),
  %svdecl(balances, %mapT(%num256, %address), %private)
  %svdecl(owner, %address, %public),
  %fdecl(%@public, __init__, , %void,
    %assign(%svar(owner), %msg.sender)),
  %fdecl(%@public %@payable, deposit, , %void,
    %assign(%subscript(%svar(balances), %msg.sender), %num256_add(%subscript(%svar(balances), %msg.sender), %as_num256(%msg.value)))
    %log(Transfer, %hex("0000000000000000000000000000000000000000") %as_num256(%msg.value)))
)`

	assert.Equal(t, expected, mustTranslate(t, source))
}

func TestTopLevelUnsupported(t *testing.T) {
	// A plain assignment is neither an annotated declaration nor a
	// function definition; no program term may be produced.
	u := requireUnsupported(t, "x = 5\n")
	assert.True(t, u.Structural())
}

func TestMultipleConstructorsAllLand(t *testing.T) {
	source := `def __init__():
    pass

def __init__():
    return
`
	out := mustTranslate(t, source)
	assert.Equal(t, 2, strings.Count(out, "__init__"), "uniqueness is not checked here")
}

func TestFailureInOneFunctionAbortsProgram(t *testing.T) {
	source := `def good():
    pass

def bad():
    x = a < b < c
`
	out, err := translateSource(t, source)
	assert.Error(t, err)
	assert.Empty(t, out)
}
