package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/solacecommunity/feedstreams/errors"
	"github.com/solacecommunity/feedstreams/generator"
)

const validRules = `[
  {
    "topic": "acme/orders/{region}/created",
    "eventName": "Order Created",
    "eventVersion": "1.0",
    "topicParameters": {
      "region": {"rule": {"group": "StringRules", "rule": "enum", "enum": ["emea", "apac"]}}
    },
    "payload": {
      "orderId": {"type": "string", "rule": {"group": "StringRules", "rule": "uuid"}},
      "total": {"type": "number", "rule": {"group": "NumberRules", "rule": "float", "minimum": 1, "maximum": 100}}
    },
    "publishSettings": {"count": 5, "interval": 1, "delay": 0}
  },
  {
    "topic": "acme/shipments/updated",
    "eventName": "Shipment Updated",
    "payload": {
      "shipmentId": {"type": "string"}
    }
  }
]`

func writeFeed(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeFeed(t, t.TempDir(), "feedrules.json", validRules)

	rules, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "Order Created", rules[0].EventName)
	assert.Equal(t, []string{"orderId", "total"}, rules[0].Payload.Keys())
	assert.Equal(t, generator.FlexInt(5), rules[0].PublishSettings.Count)

	// Second rule omitted publishSettings entirely, defaults apply
	assert.Equal(t, generator.FlexInt(DefaultPublishCount), rules[1].PublishSettings.Count)
	assert.Equal(t, FlexFloat(DefaultPublishInterval), rules[1].PublishSettings.Interval)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.True(t, cerrors.IsInvalid(err))
}

func TestLoadFile_NotAnArray(t *testing.T) {
	path := writeFeed(t, t.TempDir(), "feedrules.json", `{"topic": "x"}`)

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_FailsFastNamingOffendingEvent(t *testing.T) {
	// Second rule is missing its topic
	content := `[
	  {"topic": "a/b", "eventName": "Good Event", "payload": {}},
	  {"eventName": "Broken Event", "payload": {}}
	]`
	path := writeFeed(t, t.TempDir(), "feedrules.json", content)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken Event")
	assert.True(t, cerrors.IsInvalid(err))
}

func TestLoadFile_UnnamedRuleReportedByIndex(t *testing.T) {
	content := `[{"payload": {}}]`
	path := writeFeed(t, t.TempDir(), "feedrules.json", content)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#0")
}

func TestLoadDir_DiscoversFeeds(t *testing.T) {
	dir := t.TempDir()

	ordersDir := filepath.Join(dir, "orders")
	require.NoError(t, os.MkdirAll(ordersDir, 0o755))
	writeFeed(t, ordersDir, "feedrules.json", validRules)
	writeFeed(t, ordersDir, "feedinfo.json",
		`{"name": "Orders", "description": "Order lifecycle events", "contributor": "acme", "tags": ["retail"]}`)

	flightsDir := filepath.Join(dir, "flights")
	require.NoError(t, os.MkdirAll(flightsDir, 0o755))
	writeFeed(t, flightsDir, "feedrules.json",
		`[{"topic": "air/{flight}", "eventName": "Departure", "payload": {}}]`)

	// A subdirectory without rules is skipped
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))

	feeds, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, feeds, 2)

	// Sorted by name
	assert.Equal(t, "flights", feeds[0].Name)
	assert.Equal(t, "orders", feeds[1].Name)

	require.NotNil(t, feeds[1].Info)
	assert.Equal(t, "Orders", feeds[1].Info.Name)
	assert.Equal(t, []string{"retail"}, feeds[1].Info.Tags)
	assert.Nil(t, feeds[0].Info)
}

func TestLoadDir_SingleFeedAtRoot(t *testing.T) {
	dir := t.TempDir()
	writeFeed(t, dir, "feedrules.json", validRules)

	feeds, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Len(t, feeds[0].Rules, 2)
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.Error(t, err)
}

func TestLoadDir_PropagatesMalformedFeed(t *testing.T) {
	dir := t.TempDir()
	badDir := filepath.Join(dir, "bad")
	require.NoError(t, os.MkdirAll(badDir, 0o755))
	writeFeed(t, badDir, "feedrules.json", `[{"eventName": "No Topic", "payload": {}}]`)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No Topic")
}
