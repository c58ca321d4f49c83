package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []Declaration
	}{
		{
			name:     "single quotes",
			src:      `router.route('/users').get(auth, list);`,
			expected: []Declaration{{RawPath: "/users", Method: "get", Line: 1}},
		},
		{
			name:     "double quotes with param",
			src:      `router.route("/users/:id").put(update);`,
			expected: []Declaration{{RawPath: "/users/:id", Method: "put", Line: 1}},
		},
		{
			name: "several declarations keep source order and lines",
			src: "const router = express.Router();\n" +
				"router.route('/a').get(a);\n" +
				"\n" +
				"router.route('/b/:id').delete(b);\n",
			expected: []Declaration{
				{RawPath: "/a", Method: "get", Line: 2},
				{RawPath: "/b/:id", Method: "delete", Line: 4},
			},
		},
		{
			name:     "two declarations on one line",
			src:      `router.route('/x').get(x); router.route('/y').post(y);`,
			expected: []Declaration{{RawPath: "/x", Method: "get", Line: 1}, {RawPath: "/y", Method: "post", Line: 1}},
		},
		{
			name:     "only first chained method is captured",
			src:      `router.route('/items').get(list).post(create);`,
			expected: []Declaration{{RawPath: "/items", Method: "get", Line: 1}},
		},
		{
			name:     "mixed quotes are accepted",
			src:      `router.route('/mixed").patch(fn);`,
			expected: []Declaration{{RawPath: "/mixed", Method: "patch", Line: 1}},
		},
		{
			name:     "chain split across lines is not matched",
			src:      "router.route('/users')\n  .get(list);",
			expected: nil,
		},
		{
			name:     "other call styles are not matched",
			src:      `router.get('/users', list); app.route('/users').get(list);`,
			expected: nil,
		},
		{
			name:     "uppercase method is not matched",
			src:      `router.route('/users').GET(list);`,
			expected: nil,
		},
		{
			name:     "empty path is not matched",
			src:      `router.route('').get(list);`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDeclarations(tt.src))
		})
	}
}
