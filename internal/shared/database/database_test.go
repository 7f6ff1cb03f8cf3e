package database

import "testing"

func TestWithDBName(t *testing.T) {
	tests := []struct {
		name    string
		connStr string
		dbName  string
		want    string
	}{
		{
			name:    "empty name keeps DSN",
			connStr: "postgres://u:p@localhost:5432/app",
			dbName:  "",
			want:    "postgres://u:p@localhost:5432/app",
		},
		{
			name:    "url style overridden",
			connStr: "postgres://u:p@localhost:5432/app?sslmode=disable",
			dbName:  "ocr",
			want:    "postgres://u:p@localhost:5432/ocr?sslmode=disable",
		},
		{
			name:    "keyword style appended",
			connStr: "host=localhost user=u password=p",
			dbName:  "ocr",
			want:    "host=localhost user=u password=p dbname=ocr",
		},
		{
			name:    "keyword style overridden",
			connStr: "host=localhost dbname=app sslmode=disable",
			dbName:  "ocr",
			want:    "host=localhost dbname=ocr sslmode=disable",
		},
	}

	for _, tt := range tests {
		if got := withDBName(tt.connStr, tt.dbName); got != tt.want {
			t.Errorf("%s: withDBName(%q, %q) = %q, want %q", tt.name, tt.connStr, tt.dbName, got, tt.want)
		}
	}
}
