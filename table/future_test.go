package table

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/zyq11223/harmony/common"
	pb "github.com/zyq11223/harmony/proto"
)

func TestSingleResultResolvesOnce(t *testing.T) {
	ast := assert.New(t)
	r := newSingleResult()
	r.resolve([]byte("first"), true, nil)
	r.resolve([]byte("second"), true, nil)

	v, ok, err := r.Get(time.Second)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("first"), v)
}

func TestSingleResultCompleteFromResponse(t *testing.T) {
	ast := assert.New(t)

	r := newSingleResult()
	r.complete(&pb.AccessResponse{Status: pb.Status_OK, Values: [][]byte{[]byte("v")}}, nil)
	v, ok, err := r.Get(time.Second)
	ast.Nil(err)
	ast.True(ok)
	ast.Equal([]byte("v"), v)

	// empty value set means "no previous value"
	r = newSingleResult()
	r.complete(&pb.AccessResponse{Status: pb.Status_OK}, nil)
	_, ok, err = r.Get(time.Second)
	ast.Nil(err)
	ast.False(ok)

	r = newSingleResult()
	r.complete(&pb.AccessResponse{Status: pb.Status_EFAILED, ErrMsg: "boom"}, nil)
	_, _, err = r.Get(time.Second)
	ast.NotNil(err)
	ast.Contains(err.Error(), "boom")
}

func TestSingleResultTimeoutDetaches(t *testing.T) {
	ast := assert.New(t)
	pending := newPendingOps()
	r := newSingleResult()
	pending.register(42, r)
	r.detach = func() { pending.deregister(42) }

	_, _, err := r.Get(10 * time.Millisecond)
	ast.Equal(common.ErrRemoteOpTimeout, err)

	// the op is gone, a late response finds nothing to complete
	_, ok := pending.take(42)
	ast.False(ok)
}

func TestPendingOpsTakeIsSingleShot(t *testing.T) {
	ast := assert.New(t)
	pending := newPendingOps()
	r := newSingleResult()
	pending.register(7, r)

	c, ok := pending.take(7)
	ast.True(ok)
	ast.Equal(opCompleter(r), c)
	_, ok = pending.take(7)
	ast.False(ok)
}

func TestMapResultAggregation(t *testing.T) {
	ast := assert.New(t)
	r := newMapResult(2)
	r.completePart([][]byte{[]byte("a")}, [][]byte{[]byte("1")}, nil)
	r.completePart([][]byte{[]byte("b"), []byte("c")}, [][]byte{[]byte("2"), []byte("3")}, nil)

	m, err := r.Get(time.Second)
	ast.Nil(err)
	ast.Equal(map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
		"c": []byte("3"),
	}, m)
}

func TestMapResultPartialFailure(t *testing.T) {
	ast := assert.New(t)
	r := newMapResult(2)
	r.completePart([][]byte{[]byte("a")}, [][]byte{[]byte("1")}, nil)
	r.completePart(nil, nil, errors.New("block 3 unreachable"))

	m, err := r.Get(time.Second)
	ast.NotNil(err)
	ast.Contains(err.Error(), "block 3 unreachable")
	// surviving blocks still deliver their results
	ast.Equal([]byte("1"), m["a"])
}

func TestMapResultTimeoutDropsLateParts(t *testing.T) {
	ast := assert.New(t)
	r := newMapResult(2)
	r.completePart([][]byte{[]byte("a")}, [][]byte{[]byte("1")}, nil)

	_, err := r.Get(10 * time.Millisecond)
	ast.Equal(common.ErrRemoteOpTimeout, err)

	// a part arriving after the timeout must not close done again or panic
	r.completePart([][]byte{[]byte("b")}, [][]byte{[]byte("2")}, nil)
}

func TestMapResultEmpty(t *testing.T) {
	m, err := newMapResult(0).Get(time.Second)
	assert.Nil(t, err)
	assert.Empty(t, m)
}
