package match

import (
	"go/token"
	"go/types"
	"testing"
)

func named(name string, underlying types.Type) *types.Named {
	pkg := types.NewPackage("example.com/accounts", "accounts")
	return types.NewNamed(types.NewTypeName(token.NoPos, pkg, name, nil), underlying, nil)
}

func TestCompatibility_String(t *testing.T) {
	tests := []struct {
		compat   Compatibility
		expected string
	}{
		{Identical, "identical"},
		{Assignable, "assignable"},
		{Convertible, "convertible"},
		{NeedsTransform, "needs_transform"},
		{Incompatible, "incompatible"},
		{Compatibility(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.compat.String(); got != tt.expected {
			t.Errorf("Compatibility.String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestScore(t *testing.T) {
	intType := types.Typ[types.Int]
	int64Type := types.Typ[types.Int64]
	stringType := types.Typ[types.String]
	status := named("Status", stringType)
	audit := named("Audit", types.NewStruct(nil, nil))
	remoteAudit := named("RemoteAudit", types.NewStruct([]*types.Var{
		types.NewField(token.NoPos, nil, "At", stringType, false),
	}, nil))

	tests := []struct {
		name     string
		from     types.Type
		to       types.Type
		expected Compatibility
	}{
		{"identical", stringType, stringType, Identical},
		{"numeric widening", intType, int64Type, Convertible},
		{"named string", stringType, status, Convertible},
		{"named string back", status, stringType, Convertible},
		{"int to string", intType, stringType, Incompatible},
		{"string slice", types.NewSlice(stringType), types.NewSlice(stringType), Identical},
		{"slice elements differ", types.NewSlice(intType), types.NewSlice(int64Type), NeedsTransform},
		{"pointer deref", types.NewPointer(stringType), stringType, NeedsTransform},
		{"address of", stringType, types.NewPointer(stringType), NeedsTransform},
		{"struct to struct", audit, remoteAudit, NeedsTransform},
		{"struct to string", audit, stringType, Incompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.from, tt.to)
			if got.Compatibility != tt.expected {
				t.Errorf("Score(%s, %s) = %s, want %s", tt.from, tt.to, got.Compatibility, tt.expected)
			}
		})
	}
}

func TestScoreBothWays(t *testing.T) {
	stringType := types.Typ[types.String]
	anyType := types.Universe.Lookup("any").Type()

	// string -> any is assignable, any -> string is not.
	got := ScoreBothWays(stringType, anyType)
	if got.Compatibility.Copyable() {
		t.Errorf("ScoreBothWays(string, any) = %s, want a non-copyable verdict", got)
	}

	if got.To != "string" {
		t.Errorf("weaker direction should be reported, got %s", got)
	}
}
