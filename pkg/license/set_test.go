package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Sorted(t *testing.T) {
	s := NewSet()
	assert.Empty(t, s.Sorted())

	s.Add("MIT")
	s.Add("( Apache-2.0 OR MIT )")
	s.Add("MIT")
	s.Add("BSD-3-Clause")

	assert.EqualValues(t, 3, s.Len())
	assert.EqualValues(t, []string{"( Apache-2.0 OR MIT )", "BSD-3-Clause", "MIT"}, s.Sorted())
}
