package abstract

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// sumUpdater maintains the sum of the values in each subtree.
type sumUpdater struct{}

func (sumUpdater) Update(n *Node[int, int, int]) {
	n.aug = n.value
	if n.left != nil {
		n.aug += n.left.aug
	}
	if n.right != nil {
		n.aug += n.right.aug
	}
}

func checkSum(n *Node[int, int, int]) error {
	exp := n.value
	if n.left != nil {
		exp += n.left.aug
	}
	if n.right != nil {
		exp += n.right.aug
	}
	if n.aug != exp {
		return errors.Errorf("sum %d, expected %d", n.aug, exp)
	}
	return nil
}

func makeSumMap() Map[int, int, int] {
	return MakeMap[int, int, int](cmp.Compare[int], sumUpdater{})
}

func assertKeys(t *testing.T, m *Map[int, int, int], exp []int) {
	t.Helper()
	var got []int
	it := m.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		got = append(got, it.Key())
	}
	require.Equal(t, exp, got)
}

func TestMapBasic(t *testing.T) {
	m := makeSumMap()
	require.Equal(t, 0, m.Len())
	require.Equal(t, -1, m.Height())
	require.Equal(t, ";", m.String())

	for _, k := range []int{2, 12, 1} {
		require.True(t, m.Insert(k, k*10))
	}
	require.False(t, m.Insert(2, 99))
	v, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, 20, v)
	require.Equal(t, 3, m.Len())
	require.Equal(t, 1, m.Height())
	require.Equal(t, "(1:10)2:20(12:120)", m.String())
	require.Equal(t, 150, m.Root().aug)
	assertKeys(t, &m, []int{1, 2, 12})

	k, v, found := m.Delete(3)
	require.False(t, found)
	require.Equal(t, 0, k)
	require.Equal(t, 0, v)
	require.Equal(t, "(1:10)2:20(12:120)", m.String())

	k, v, found = m.Delete(2)
	require.True(t, found)
	require.Equal(t, 2, k)
	require.Equal(t, 20, v)
	require.Equal(t, "(1:10)12:120", m.String())
	require.NoError(t, m.Verify(checkSum))

	m.Reset()
	require.Equal(t, 0, m.Len())
	_, _, found = m.DeleteMin()
	require.False(t, found)
	_, _, found = m.DeleteMax()
	require.False(t, found)
}

// TestMapAscendingInsert checks that sorted insertion, the worst case for
// an unbalanced tree, keeps the height logarithmic.
func TestMapAscendingInsert(t *testing.T) {
	m := makeSumMap()
	const N = 1 << 10
	for i := 0; i < N; i++ {
		m.Insert(i, 1)
	}
	require.NoError(t, m.Verify(checkSum))
	require.Equal(t, N, m.Len())
	require.Equal(t, 10, m.Height())
	require.Equal(t, N, m.Root().aug)
}

func TestMapRandom(t *testing.T) {
	t.Parallel()
	const maxN = 1000
	rng := rand.New(rand.NewSource(rand.Int63()))
	m := makeSumMap()
	oracle := btree.NewOrderedG[int](8)
	for step := 0; step < 20*maxN; step++ {
		k := rng.Intn(maxN)
		switch op := rng.Intn(10); {
		case op < 5:
			_, existed := oracle.Get(k)
			if !existed {
				oracle.ReplaceOrInsert(k)
			}
			require.Equal(t, !existed, m.Insert(k, k))
		case op < 8:
			_, existed := oracle.Delete(k)
			_, _, found := m.Delete(k)
			require.Equal(t, existed, found)
		case op < 9:
			exp, existed := oracle.DeleteMin()
			got, _, found := m.DeleteMin()
			require.Equal(t, existed, found)
			require.Equal(t, exp, got)
		default:
			exp, existed := oracle.DeleteMax()
			got, _, found := m.DeleteMax()
			require.Equal(t, existed, found)
			require.Equal(t, exp, got)
		}
		require.Equal(t, oracle.Len(), m.Len())
		if step%97 == 0 {
			require.NoError(t, m.Verify(checkSum))
		}
	}
	require.NoError(t, m.Verify(checkSum))
	var exp []int
	oracle.Ascend(func(k int) bool {
		exp = append(exp, k)
		return true
	})
	assertKeys(t, &m, exp)
}

func TestMapNthRank(t *testing.T) {
	t.Parallel()
	m := makeSumMap()
	const maxN = 1000
	N := rand.Intn(maxN) + 1
	for _, idx := range rand.Perm(N) {
		m.Insert(2*idx, idx)
	}
	for _, idx := range rand.Perm(N) {
		k, v, found := m.Nth(idx)
		require.True(t, found)
		require.Equal(t, 2*idx, k)
		require.Equal(t, idx, v)
		require.Equal(t, idx, m.Rank(2*idx))
		require.Equal(t, idx+1, m.Rank(2*idx+1))
	}
	require.Equal(t, 0, m.Rank(-1))
	_, _, found := m.Nth(N)
	require.False(t, found)
	_, _, found = m.Nth(-1)
	require.False(t, found)
}

func TestIterator(t *testing.T) {
	m := makeSumMap()
	for _, k := range rand.Perm(50) {
		m.Insert(2*k, k)
	}
	it := m.MakeIter()

	var got []int
	for it.Last(); it.Valid(); it.Prev() {
		got = append(got, it.Key())
	}
	require.Len(t, got, 50)
	for i, k := range got {
		require.Equal(t, 2*(49-i), k)
	}

	for _, tc := range []struct {
		seek, exp int
		valid     bool
	}{
		{seek: -5, exp: 0, valid: true},
		{seek: 0, exp: 0, valid: true},
		{seek: 7, exp: 8, valid: true},
		{seek: 98, exp: 98, valid: true},
		{seek: 99},
	} {
		it.SeekGE(tc.seek)
		require.Equal(t, tc.valid, it.Valid(), "seek %d", tc.seek)
		if tc.valid {
			require.Equal(t, tc.exp, it.Key())
			require.Equal(t, tc.exp/2, it.Value())
		}
	}

	// Reversing direction mid-iteration.
	it.SeekGE(41)
	require.Equal(t, 42, it.Key())
	it.Prev()
	require.Equal(t, 40, it.Key())
	it.Next()
	it.Next()
	require.Equal(t, 44, it.Key())
}

func TestClone(t *testing.T) {
	m := makeSumMap()
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	c := m.Clone()
	for i := 0; i < 100; i += 2 {
		m.Delete(i)
	}
	require.NoError(t, m.Verify(checkSum))
	require.NoError(t, c.Verify(checkSum))
	require.Equal(t, 50, m.Len())
	require.Equal(t, 100, c.Len())

	// Values are not shared either.
	k := c.Root().Key()
	*c.Root().Value() = -1
	if v, ok := m.Get(k); ok {
		require.Equal(t, k, v)
	}
}

func TestRemoveMinOfEmptyPanics(t *testing.T) {
	m := makeSumMap()
	require.PanicsWithValue(t, "invariant violated: min of empty subtree", func() {
		m.removeMin(nil)
	})
	require.PanicsWithValue(t, "invariant violated: max of empty subtree", func() {
		m.removeMax(nil)
	})
}

func TestVerifyDetectsCorruption(t *testing.T) {
	m := makeSumMap()
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	m.root.size++
	require.Error(t, m.Verify(nil))
	m.root.size--
	m.root.aug++
	require.NoError(t, m.Verify(nil))
	require.Error(t, m.Verify(checkSum))
}
