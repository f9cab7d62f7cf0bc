package dataset

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockdata/internal/dataset/embedded"
)

func bundled(t *testing.T) []byte {
	t.Helper()
	raw, err := fs.ReadFile(embedded.FS(), embedded.DefaultAsset)
	require.NoError(t, err)
	return raw
}

// mutate decodes the bundled dataset into a generic document, applies fn and
// re-encodes it.
func mutate(t *testing.T, fn func(doc map[string]any)) []byte {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(bundled(t), &doc))
	fn(doc)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func section(doc map[string]any, name string) map[string]any {
	return doc[name].(map[string]any)
}

func requireViolation(t *testing.T, err error, path string) {
	t.Helper()
	var sv *SchemaViolation
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, path, sv.Path)
}

func TestDecode(t *testing.T) {
	t.Run("bundled dataset satisfies the contract", func(t *testing.T) {
		p, err := Decode(bundled(t))
		require.NoError(t, err)

		assert.Equal(t, "usr_001", p.User.ID)
		assert.NotEmpty(t, p.Dashboard.QuickActions)
		assert.NotEmpty(t, p.Invoices.Recent)
		assert.NotEmpty(t, p.Invoices.Recent[0].Items)
		assert.NotEmpty(t, p.Expenses.Categories)
		assert.NotEmpty(t, p.Wallet.Accounts)
		assert.NotEmpty(t, p.Profile.Settings)
	})

	t.Run("missing section is a schema violation", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { delete(doc, "wallet") })
		_, err := Decode(raw)
		requireViolation(t, err, "wallet")
	})

	t.Run("extra top-level section is a schema violation", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { doc["payroll"] = map[string]any{} })
		_, err := Decode(raw)
		requireViolation(t, err, "payroll")
	})

	t.Run("unknown field is a schema violation", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { section(doc, "user")["nickname"] = "sj" })
		_, err := Decode(raw)
		requireViolation(t, err, "user")
	})

	t.Run("wrong field type is a schema violation", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { section(doc, "wallet")["totalBalance"] = "lots" })
		_, err := Decode(raw)
		requireViolation(t, err, "wallet")
	})

	t.Run("unknown invoice status is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) {
			recent := section(doc, "invoices")["recent"].([]any)
			recent[1].(map[string]any)["status"] = "lost"
		})
		_, err := Decode(raw)
		requireViolation(t, err, "invoices.recent[1].status")
	})

	t.Run("missing list is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { delete(section(doc, "profile"), "settings") })
		_, err := Decode(raw)
		requireViolation(t, err, "profile.settings")
	})

	t.Run("missing nested records are rejected", func(t *testing.T) {
		cases := []struct {
			section, record string
		}{
			{"invoices", "summary"},
			{"dashboard", "metrics"},
			{"profile", "stats"},
			{"expenses", "summary"},
		}
		for _, tc := range cases {
			raw := mutate(t, func(doc map[string]any) { delete(section(doc, tc.section), tc.record) })
			_, err := Decode(raw)
			requireViolation(t, err, tc.section+"."+tc.record)
		}
	})

	t.Run("missing numeric leaf is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) {
			recent := section(doc, "invoices")["recent"].([]any)
			delete(recent[0].(map[string]any), "amount")
		})
		_, err := Decode(raw)
		requireViolation(t, err, "invoices.recent[0].amount")
	})

	t.Run("missing field deep in a list is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) {
			invoice := section(doc, "invoices")["recent"].([]any)[1].(map[string]any)
			delete(invoice["items"].([]any)[0].(map[string]any), "rate")
		})
		_, err := Decode(raw)
		requireViolation(t, err, "invoices.recent[1].items[0].rate")
	})

	t.Run("null required field is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { section(doc, "wallet")["totalBalance"] = nil })
		_, err := Decode(raw)
		requireViolation(t, err, "wallet.totalBalance")
	})

	t.Run("optional setting value may be absent", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) {
			for _, s := range section(doc, "profile")["settings"].([]any) {
				delete(s.(map[string]any), "value")
			}
		})
		_, err := Decode(raw)
		require.NoError(t, err)
	})

	t.Run("empty identifier is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { section(doc, "user")["id"] = "  " })
		_, err := Decode(raw)
		requireViolation(t, err, "user.id")
	})

	t.Run("section that is not an object is rejected", func(t *testing.T) {
		raw := mutate(t, func(doc map[string]any) { doc["dashboard"] = []any{} })
		_, err := Decode(raw)
		requireViolation(t, err, "dashboard")
	})

	t.Run("non-object payload is a schema violation", func(t *testing.T) {
		_, err := Decode([]byte(`[1, 2, 3]`))
		requireViolation(t, err, "$")
	})

	t.Run("invalid JSON is malformed, not a violation", func(t *testing.T) {
		_, err := Decode([]byte(`{"user": `))
		require.ErrorIs(t, err, ErrMalformed)

		var sv *SchemaViolation
		assert.False(t, errors.As(err, &sv))
	})
}

func TestDecodeSection(t *testing.T) {
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(bundled(t), &doc))

	t.Run("returns the typed section", func(t *testing.T) {
		v, err := DecodeSection(SectionInvoices, doc["invoices"])
		require.NoError(t, err)

		invoices, ok := v.(*Invoices)
		require.True(t, ok)
		assert.Equal(t, 42, invoices.Summary.TotalInvoices)
	})

	t.Run("rejects a section of the wrong shape", func(t *testing.T) {
		_, err := DecodeSection(SectionUser, doc["wallet"])
		requireViolation(t, err, "user")
	})

	t.Run("unknown section name", func(t *testing.T) {
		_, err := DecodeSection(Section("payroll"), doc["user"])
		assert.ErrorIs(t, err, ErrSectionNotFound)
	})
}

func TestAssemble(t *testing.T) {
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(bundled(t), &doc))

	parts := make(map[Section][]byte)
	for _, s := range Sections() {
		parts[s] = doc[string(s)]
	}

	t.Run("all sections produce a payload", func(t *testing.T) {
		p, err := Assemble(parts)
		require.NoError(t, err)
		assert.Equal(t, "Sarah Johnson", p.User.Name)
	})

	t.Run("a missing part fails the whole payload", func(t *testing.T) {
		delete(parts, SectionProfile)
		_, err := Assemble(parts)
		requireViolation(t, err, "profile")
	})
}

func TestPayloadSection(t *testing.T) {
	p, err := Decode(bundled(t))
	require.NoError(t, err)

	for _, s := range Sections() {
		v, err := p.Section(s)
		require.NoError(t, err, s)
		assert.NotNil(t, v, s)
	}

	wallet, err := p.Section(SectionWallet)
	require.NoError(t, err)
	assert.Same(t, &p.Wallet, wallet)

	_, err = p.Section(Section("all"))
	assert.ErrorIs(t, err, ErrSectionNotFound)

	var nilPayload *Payload
	_, err = nilPayload.Section(SectionUser)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("expenses")
	require.NoError(t, err)
	assert.Equal(t, SectionExpenses, s)

	_, err = ParseSection("Expenses")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestManifest(t *testing.T) {
	t.Run("split layout is recognised", func(t *testing.T) {
		m, ok := ParseManifest([]byte(`{
			"user": "user.json", "dashboard": "dashboard.json", "invoices": "invoices.json",
			"expenses": "expenses.json", "wallet": "wallet.json", "profile": "profile.json"
		}`))
		require.True(t, ok)
		require.NoError(t, m.Validate())
		assert.Equal(t, "wallet.json", m[SectionWallet])
	})

	t.Run("a full payload is not a manifest", func(t *testing.T) {
		_, ok := ParseManifest(bundled(t))
		assert.False(t, ok)
	})

	t.Run("incomplete manifest fails validation", func(t *testing.T) {
		m, ok := ParseManifest([]byte(`{"user": "user.json"}`))
		require.True(t, ok)
		requireViolation(t, m.Validate(), "dashboard")
	})

	t.Run("unknown entry fails validation", func(t *testing.T) {
		m, ok := ParseManifest([]byte(`{
			"user": "user.json", "dashboard": "dashboard.json", "invoices": "invoices.json",
			"expenses": "expenses.json", "wallet": "wallet.json", "profile": "profile.json",
			"payroll": "payroll.json"
		}`))
		require.True(t, ok)
		requireViolation(t, m.Validate(), "payroll")
	})
}
