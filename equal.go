package conftree

import (
	"bytes"
	"fmt"
)

// sameTree checks whether two trees represent the same document. The json
// driver's deterministic encoding makes byte comparison a structural
// equality check regardless of which mapping shapes the trees hold.
func sameTree(a, b Tree) (bool, error) {
	ab, err := JSONDriver.Encode(a)
	if err != nil {
		return false, fmt.Errorf("can't represent %#v as json: %v", a, err)
	}
	bb, err := JSONDriver.Encode(b)
	if err != nil {
		return false, fmt.Errorf("can't represent %#v as json: %v", b, err)
	}
	return bytes.Equal(ab, bb), nil
}
