package predql

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMap(t *testing.T) {
	cm := NewClassMapper[User]().AutoMap().MustBuild()

	props := cm.Properties()
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"CreatedAt", "Name", "Email", "Password", "ID"}, names)

	email, ok := cm.Property("Email")
	require.True(t, ok)
	assert.Equal(t, "email_address", email.ColumnName)

	password, ok := cm.Property("Password")
	require.True(t, ok)
	assert.True(t, password.Ignored)
	assert.Equal(t, "Password", password.ColumnName)

	id, ok := cm.Property("ID")
	require.True(t, ok)
	assert.Equal(t, Identity, id.KeyType)

	_, ok = cm.Property("secret")
	assert.False(t, ok, "unexported fields are not mapped")
}

func TestAutoMap_KeyDetection(t *testing.T) {
	tests := []struct {
		name   string
		mapper *ClassMapper
		key    string
		kind   KeyType
	}{
		{"int64 identity", NewClassMapper[Order](), "ID", Identity},
		{"uuid guid", NewClassMapper[Session](), "SessionID", Guid},
		{"string assigned", NewClassMapper[Account](), "ExternalId", Assigned},
		{"big.Int identity", NewClassMapper[Ledger](), "LedgerId", Identity},
		{"pointer to uint identity", NewClassMapper[Document](), "DocumentID", Identity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, err := tt.mapper.AutoMap().Build()
			require.NoError(t, err)

			keys := cm.Keys()
			require.Len(t, keys, 1, "only the first id-suffixed property becomes a key")
			assert.Equal(t, tt.key, keys[0].Name)
			assert.Equal(t, tt.kind, keys[0].KeyType)
		})
	}
}

func TestAutoMap_NoKeyCandidate(t *testing.T) {
	cm := NewClassMapper[Tag]().AutoMap().MustBuild()
	assert.Empty(t, cm.Keys())
	assert.Len(t, cm.Properties(), 2)
}

func TestAutoMap_ExplicitKeySuppressesDetection(t *testing.T) {
	m := NewClassMapper[Order]()
	m.Map("Status").Key(Assigned)

	cm := m.AutoMap().MustBuild()
	keys := cm.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, "Status", keys[0].Name)

	id, ok := cm.Property("ID")
	require.True(t, ok)
	assert.Equal(t, NotAKey, id.KeyType)
}

func TestAutoMap_ExplicitMappingsKept(t *testing.T) {
	m := NewClassMapper[Order]().Table("orders")
	m.Map("Total").Column("grand_total")

	cm := m.AutoMap().MustBuild()
	props := cm.Properties()
	require.Len(t, props, 5)
	assert.Equal(t, "Total", props[0].Name, "explicit mappings come first")
	assert.Equal(t, "grand_total", props[0].ColumnName)
}

func TestAutoMap_EmbeddedFields(t *testing.T) {
	cm := NewClassMapper[Document]().AutoMap().MustBuild()

	_, ok := cm.Property("Version")
	assert.True(t, ok, "promoted fields are mapped")
	_, ok = cm.Property("Audited")
	assert.False(t, ok, "embedded struct itself is not a property")
}

func TestAutoMap_UnsafeTag(t *testing.T) {
	type Widget struct {
		Name string `db:"name; DROP TABLE x"`
		ID   int
	}

	logger, hook := newNullLogger()
	cm := NewClassMapper[Widget]().Logger(logger).AutoMap().MustBuild()

	name, ok := cm.Property("Name")
	require.True(t, ok)
	assert.Equal(t, "Name", name.ColumnName)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned, "expected a warning for the unsafe tag")
}

func TestKeyTypeOf(t *testing.T) {
	tests := []struct {
		value any
		want  KeyType
	}{
		{int(0), Identity},
		{int8(0), Identity},
		{uint64(0), Identity},
		{new(int32), Identity},
		{uuid.UUID{}, Guid},
		{new(uuid.UUID), Guid},
		{uuid.NullUUID{}, Guid},
		{"", Assigned},
		{float64(0), Assigned},
		{[]byte{}, Assigned},
	}

	for _, tt := range tests {
		got := keyTypeOf(reflect.TypeOf(tt.value))
		assert.Equal(t, tt.want, got, "%T", tt.value)
	}
}

func TestIsKeyName(t *testing.T) {
	assert.True(t, isKeyName("Id"))
	assert.True(t, isKeyName("UserID"))
	assert.True(t, isKeyName("guid"))
	assert.False(t, isKeyName("I"))
	assert.False(t, isKeyName("Identity"))
}
