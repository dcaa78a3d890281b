package sandbox

import "testing"

func TestCheckRejectsForbiddenKeywords(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"PlainSelect", "SELECT * FROM users", false},
		{"SelectWithWhere", "SELECT name FROM products WHERE stock < 20", false},
		{"Drop", "DROP TABLE users", true},
		{"LowercaseDelete", "delete from users", true},
		{"MixedCaseUpdate", "UpDaTe users SET name='x'", true},
		{"Truncate", "TRUNCATE TABLE orders", true},
		{"Alter", "ALTER TABLE users ADD COLUMN x", true},
		{"Insert", "INSERT INTO users VALUES (1)", true},
		{"Grant", "GRANT ALL ON users TO bob", true},
		{"Revoke", "REVOKE ALL ON users FROM bob", true},
		// substring matching has no tokenizer: a benign identifier
		// containing a keyword is rejected too
		{"FalsePositiveColumnName", "SELECT 'update_count' AS x", true},
		{"FalsePositiveInString", "SELECT * FROM users WHERE name = 'grantham'", true},
		{"EmbeddedKeywordMidWord", "SELECT * FROM droplets", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.query)
			if tt.wantErr && err == nil {
				t.Fatalf("Check(%q) = nil, want ErrForbidden", tt.query)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Check(%q) = %v, want nil", tt.query, err)
			}
			if tt.wantErr && err != ErrForbidden {
				t.Fatalf("Check(%q) = %v, want ErrForbidden", tt.query, err)
			}
		})
	}
}
