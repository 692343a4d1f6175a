package moddb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModDb(t *testing.T) {
	t.Run("SetActiveは存在しないModに対してエラーになること", func(t *testing.T) {
		db := &ModDb{Mods: map[string]*Mod{"mod1": {Active: false}}}

		assert.NoError(t, db.SetActive("mod1", true))
		assert.True(t, db.Mods["mod1"].Active)

		err := db.SetActive("ghost", true)
		assert.ErrorIs(t, err, ErrModNotFound)
	})

	t.Run("SetAllActiveが全Modに適用されること", func(t *testing.T) {
		db := &ModDb{Mods: map[string]*Mod{
			"mod1": {Active: false},
			"mod2": {Active: true},
		}}

		db.SetAllActive(true)
		assert.True(t, db.Mods["mod1"].Active)
		assert.True(t, db.Mods["mod2"].Active)

		db.SetAllActive(false)
		assert.False(t, db.Mods["mod1"].Active)
		assert.False(t, db.Mods["mod2"].Active)
	})

	t.Run("ModNamesがソート済みで返ること", func(t *testing.T) {
		db := &ModDb{Mods: map[string]*Mod{
			"zeta":  {},
			"alpha": {},
		}}

		assert.Equal(t, []string{"alpha", "zeta"}, db.ModNames())
	})

	t.Run("activeフィールドのないModエントリはParseエラーになること", func(t *testing.T) {
		var db ModDb
		err := json.Unmarshal([]byte(`{"mods": {"mod1": {"filename": "a.zip"}}}`), &db)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("MarshalJSONがactiveと未知フィールドを両方出力すること", func(t *testing.T) {
		mod := Mod{
			Active: true,
			Extra:  map[string]json.RawMessage{"filename": json.RawMessage(`"a.zip"`)},
		}

		out, err := json.Marshal(mod)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"active": true, "filename": "a.zip"}`, string(out))
	})
}
