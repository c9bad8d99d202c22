package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountsPkg = "modelkit/examples/accounts"

func loadAccounts(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(accountsPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func fieldByName(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadAccounts(t)

	require.Contains(t, graph.Packages, accountsPkg)
	pkg := graph.Packages[accountsPkg]
	assert.Equal(t, "accounts", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	assert.Contains(t, graph.Types, TypeID{PkgPath: accountsPkg, Name: "Account"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: accountsPkg, Name: "RemoteAccount"})
	assert.Contains(t, pkg.Types, TypeID{PkgPath: accountsPkg, Name: "Audit"})
}

func TestAnalyzer_AccountFields(t *testing.T) {
	graph := loadAccounts(t)

	account := graph.GetType(TypeID{PkgPath: accountsPkg, Name: "Account"})
	require.NotNil(t, account)
	assert.Equal(t, TypeKindStruct, account.Kind)

	audit := fieldByName(t, account, "Audit")
	assert.True(t, audit.Embedded)
	assert.Equal(t, TypeKindStruct, audit.Type.Kind)

	tags := fieldByName(t, account, "Tags")
	assert.Equal(t, TypeKindSlice, tags.Type.Kind)
	require.NotNil(t, tags.Type.ElemType)
	assert.Equal(t, TypeKindBasic, tags.Type.ElemType.Kind)

	status := fieldByName(t, account, "Status")
	assert.Equal(t, TypeKindAlias, status.Type.Kind)

	createdAt := fieldByName(t, audit.Type, "CreatedAt")
	assert.Equal(t, TypeKindExternal, createdAt.Type.Kind)
	assert.Equal(t, "time.Time", createdAt.Type.ID.String())
}

func TestAnalyzer_MethodsSkipGeneratedFiles(t *testing.T) {
	graph := loadAccounts(t)

	account := graph.GetType(TypeID{PkgPath: accountsPkg, Name: "Account"})
	require.NotNil(t, account)

	assert.True(t, account.HasMethod("GetEmail"))
	assert.False(t, account.HasMethod("GetID"), "GetID lives in a generated file")
	assert.False(t, account.HasMethod("SetEmail"), "SetEmail lives in a generated file")
}

func TestAnalyzer_KeyedFields(t *testing.T) {
	graph := loadAccounts(t)

	account := graph.GetType(TypeID{PkgPath: accountsPkg, Name: "Account"})
	require.NotNil(t, account)

	var keys []string
	for _, kf := range account.KeyedFields("prop") {
		keys = append(keys, kf.Key)
	}

	assert.Equal(t, []string{
		"id", "email", "displayName", "status", "tags", "_passwordHash", "createdBy", "createdAt",
	}, keys)

	f, ok := account.LookupKey("createdBy", "prop")
	require.True(t, ok)
	assert.Equal(t, "CreatedBy", f.Name)

	remote := graph.GetType(TypeID{PkgPath: accountsPkg, Name: "RemoteAccount"})
	require.NotNil(t, remote)

	f, ok = remote.LookupKey("userId", "prop")
	require.True(t, ok)
	assert.Equal(t, "UserID", f.Name)

	_, ok = remote.LookupKey("UserID", "prop")
	assert.False(t, ok)
}

func TestAnalyzer_GetStruct(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.LoadPackages(accountsPkg)
	require.NoError(t, err)

	info, err := a.GetStruct(accountsPkg, "Account")
	require.NoError(t, err)
	assert.Equal(t, "Account", info.ID.Name)

	_, err = a.GetStruct(accountsPkg, "Status")
	require.ErrorContains(t, err, "is not a struct")

	_, err = a.GetStruct(accountsPkg, "Missing")
	require.ErrorContains(t, err, "not found")
}

func TestAnalyzer_LoadPackagesError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("modelkit/does/not/exist")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: accountsPkg, Name: "Account"}
	assert.Equal(t, "modelkit/examples/accounts.Account", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_Key(t *testing.T) {
	tests := []struct {
		name   string
		field  FieldInfo
		want   string
		wantOK bool
	}{
		{"derived", FieldInfo{Name: "DisplayName"}, "displayName", true},
		{"initialism", FieldInfo{Name: "ID"}, "id", true},
		{"tagged", FieldInfo{Name: "UserID", Tag: `prop:"userId"`}, "userId", true},
		{"tag options", FieldInfo{Name: "Mail", Tag: `prop:"mail,omitempty"`}, "mail", true},
		{"excluded", FieldInfo{Name: "Note", Tag: `prop:"-"`}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := tt.field.Key("prop")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, key)
		})
	}

	f := FieldInfo{Name: "Mail", Tag: `db:"email"`}
	key, _ := f.Key("db")
	assert.Equal(t, "email", key)
	assert.True(t, f.HasTag("db"))
	assert.False(t, f.HasTag("prop"))
}
