/*
Package seek provides small, generic search and addition utilities.

Searching

The package implements the two classic flavors of searching a sequence:
a linear scan, which reports the position of the first occurrence of an
item, and a binary search, which reports mere presence but does so in
logarithmic time on sorted input. A dispatching front-end routes between
the two, depending on whether the caller asks a presence question or a
position question.

	Operation        |  Unsorted input   |  Sorted input
	-----------------+-------------------+---------------
	Linear (index)   |  O(n)             |  O(k)  early exit
	Binary (present) |  O(n log n) sort  |  O(log n)
	                 |  + O(log n)       |

Position questions always run on the sequence as given, because sorting
would change what “first occurrence” means. Presence questions always
run as a binary search, paying a one-time sort of a copy when the input
is not already sorted.

Addition

As a companion, the package offers addition helpers in three flavors:
constrained generics over built-in addable types, method-set generics
for user-defined types with their own addition behavior, and a dynamic
variant that decides at run-time whether its operands can be added at
all.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package seek

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeekError is an error type for the seek module
type SeekError string

func (e SeekError) Error() string {
	return string(e)
}

// ErrUnsupportedOperand is flagged whenever Sum receives an operand type
// which provides no addition behavior.
const ErrUnsupportedOperand = SeekError("operand type does not support addition")

// ErrOperandMismatch is flagged whenever Sum receives two operands of
// differing dynamic type.
const ErrOperandMismatch = SeekError("operand types do not match")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeekError("illegal arguments")
