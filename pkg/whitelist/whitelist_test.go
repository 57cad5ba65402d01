package whitelist

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ascendant-nft/mint-go/pkg/merkle"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAddresses(n int) []string {
	addrs := make([]string, n)
	for i := 0; i < n; i++ {
		addrs[i] = common.BigToAddress(big.NewInt(int64(1000 + i))).Hex()
	}
	return addrs
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWhitelist_ProofForMembers(t *testing.T) {
	addrs := testAddresses(25)
	wl, err := New(addrs, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 25, wl.Size())
	require.NotEqual(t, common.Hash{}, wl.Root())

	for _, raw := range addrs {
		addr := common.HexToAddress(raw)
		require.True(t, wl.Contains(addr))

		proof, ok := wl.ProofFor(addr)
		require.True(t, ok)
		assert.True(t, wl.Verify(addr, proof))
	}
}

func TestWhitelist_ProofForNonMember(t *testing.T) {
	wl, err := New(testAddresses(5), zap.NewNop())
	require.NoError(t, err)

	outsider := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	proof, ok := wl.ProofFor(outsider)
	require.False(t, ok)
	require.NotNil(t, proof)
	require.Empty(t, proof)
	require.False(t, wl.Contains(outsider))
	require.False(t, wl.Verify(outsider, proof))
}

func TestWhitelist_InvalidAddressFailsFast(t *testing.T) {
	addrs := append(testAddresses(3), "not-an-address")
	wl, err := New(addrs, zap.NewNop())
	require.Error(t, err)
	require.ErrorIs(t, err, merkle.ErrInvalidAddress)
	require.Nil(t, wl)
}

func TestWhitelist_Empty(t *testing.T) {
	wl, err := New(nil, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 0, wl.Size())
	require.Equal(t, common.Hash(merkle.EmptyRoot), wl.Root())

	_, ok := wl.ProofFor(common.HexToAddress(testAddresses(1)[0]))
	require.False(t, ok)
}

func TestWhitelist_PreservedLeafOrder(t *testing.T) {
	addrs := testAddresses(6)
	sorted, err := New(addrs, zap.NewNop())
	require.NoError(t, err)
	ordered, err := New(addrs, zap.NewNop(), merkle.WithPreservedLeafOrder())
	require.NoError(t, err)

	tree, err := merkle.BuildTree(addrs, merkle.WithPreservedLeafOrder())
	require.NoError(t, err)
	require.Equal(t, common.Hash(tree.Root), ordered.Root())
	require.Equal(t, sorted.Size(), ordered.Size())
}

func TestLoadAddresses_JSON(t *testing.T) {
	addrs := testAddresses(3)
	path := writeFile(t, "addresses.json", `["`+strings.Join(addrs, `","`)+`"]`)

	loaded, err := LoadAddresses(path)
	require.NoError(t, err)
	require.Equal(t, addrs, loaded)
}

func TestLoadAddresses_Text(t *testing.T) {
	addrs := testAddresses(3)
	content := "# whitelist\n" + addrs[0] + "\n\n  " + addrs[1] + "  \n# trailing comment\n" + addrs[2] + "\n"
	path := writeFile(t, "addresses.txt", content)

	loaded, err := LoadAddresses(path)
	require.NoError(t, err)
	require.Equal(t, addrs, loaded)
}

func TestLoadAddresses_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadAddresses(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read address list")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"not": "an array"}`)
		_, err := LoadAddresses(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to decode address list")
	})
}

func TestNewFromFile(t *testing.T) {
	addrs := testAddresses(4)
	path := writeFile(t, "addresses.txt", strings.Join(addrs, "\n"))

	wl, err := NewFromFile(path, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 4, wl.Size())

	direct, err := New(addrs, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, direct.Root(), wl.Root())
}
