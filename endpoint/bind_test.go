package endpoint

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/broady/srapi"
	"github.com/broady/srapi/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var welcome = New("welcome",
	Param("template", Positional(0)),
	Param("username"),
)

func TestBind_WelcomeExample(t *testing.T) {
	b, err := welcome.Bind(Values{"template": 3, "username": "ana"})
	require.NoError(t, err)
	assert.Equal(t, "welcome/3?username=ana", b.URL())

	_, err = welcome.Bind(Values{"template": 3})
	require.Error(t, err)
	assert.Equal(t, srapi.CodeMissingParameter, srapi.CodeOf(err))
	assert.Contains(t, err.Error(), "missing required parameter username")
}

func TestBind_RequiredFalsy(t *testing.T) {
	op := New("x", Param("a"))
	for _, v := range []any{nil, "", 0, false, []any{}, map[string]any{}, ir.NoValue} {
		t.Run(fmt.Sprintf("%T", v), func(t *testing.T) {
			_, err := op.Bind(Values{"a": v})
			require.Error(t, err)
			assert.True(t, srapi.IsCode(err, srapi.CodeMissingParameter))
		})
	}
	_, err := op.Bind(Values{"a": ""})
	assert.Contains(t, err.Error(), "missing required value for parameter a")
}

func TestBind_OptionalAbsentOrNil(t *testing.T) {
	op := New("x", Param("a", Optional()), Param("b", Optional()))
	b, err := op.Bind(Values{"a": nil})
	require.NoError(t, err)
	_, ok := b.Value("a")
	assert.False(t, ok)
	assert.Equal(t, "x", b.URL())
}

func TestBind_UnknownParameter(t *testing.T) {
	_, err := welcome.Bind(Values{"template": 1, "username": "a", "usrname": "b"})
	require.Error(t, err)
	assert.Equal(t, srapi.CodeUnknownParameter, srapi.CodeOf(err))
	assert.Contains(t, err.Error(), `did you mean "username"?`)

	_, err = welcome.Bind(Values{"template": 1, "username": "a", "zzz": "b"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestBind_Isolation(t *testing.T) {
	op := New("iso", Param("x"))
	a, err := op.Bind(Values{"x": 1})
	require.NoError(t, err)
	b, err := op.Bind(Values{"x": 2})
	require.NoError(t, err)

	av, _ := a.Value("x")
	bv, _ := b.Value("x")
	assert.Equal(t, 1, av)
	assert.Equal(t, 2, bv)
}

func TestBind_IsolationConcurrent(t *testing.T) {
	op := New("iso", Param("x"), Param("y", Optional()))
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := op.Bind(Values{"x": i, "y": i * 10})
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, fmt.Sprintf("iso?x=%d&y=%d", i, i*10), b.URL())
		}()
	}
	wg.Wait()
}

func TestBind_CallerMapNotRetained(t *testing.T) {
	values := Values{"x": 1}
	b, err := New("x", Param("x")).Bind(values)
	require.NoError(t, err)
	values["x"] = 99
	v, _ := b.Value("x")
	assert.Equal(t, 1, v)
}

func TestBind_Key(t *testing.T) {
	op := New("premium/amongus",
		Param("username"),
		Param("key", Key(), Tier(1)),
		Param("custom", Optional()),
	)

	tests := []struct {
		name     string
		values   Values
		cred     *Credential
		wantCode srapi.ErrorCode
		wantURL  string
		wantTier int
	}{
		{
			name:     "no key",
			values:   Values{"username": "ana"},
			wantCode: srapi.CodeInsufficientTier,
		},
		{
			name:    "inline key",
			values:  Values{"username": "ana", "key": "abc"},
			wantURL: "premium/amongus?username=ana&key=abc",
		},
		{
			name:     "credential",
			values:   Values{"username": "ana"},
			cred:     &Credential{Tier: 2, Value: "k2"},
			wantURL:  "premium/amongus?username=ana&key=k2",
			wantTier: 2,
		},
		{
			name:    "credential overrides inline key",
			values:  Values{"username": "ana", "key": "inline"},
			cred:    &Credential{Tier: 1, Value: "k1"},
			wantURL: "premium/amongus?username=ana&key=k1", wantTier: 1,
		},
		{
			name:    "unknown credential tier",
			values:  Values{"username": "ana"},
			cred:    &Credential{Value: "k0"},
			wantURL: "premium/amongus?username=ana&key=k0",
		},
		{
			name:     "empty credential is ignored",
			values:   Values{"username": "ana"},
			cred:     &Credential{Tier: 3},
			wantCode: srapi.CodeInsufficientTier,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []BindOption
			if tt.cred != nil {
				opts = append(opts, WithCredential(*tt.cred))
			}
			b, err := op.Bind(tt.values, opts...)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, srapi.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, b.URL())
			assert.Equal(t, tt.wantTier, b.Tier())
		})
	}
}

func TestBind_KeyTierTooLow(t *testing.T) {
	op := New("premium/welcome", Param("username"), Param("key", Key(), Tier(2)))
	_, err := op.Bind(Values{"username": "ana"}, WithCredential(Credential{Tier: 1, Value: "k"}))
	require.Error(t, err)
	assert.Equal(t, srapi.CodeInsufficientTier, srapi.CodeOf(err))
	assert.Contains(t, err.Error(), "expected a tier 2 or above key")
	assert.Contains(t, err.Error(), "premium/welcome")
}

func TestBind_GatedParameter(t *testing.T) {
	op := New("premium/rankcard",
		Param("username"),
		Param("key", Key(), Tier(1)),
		Param("bg", Optional(), Tier(2)),
	)

	_, err := op.Bind(Values{"username": "a", "bg": "u"}, WithCredential(Credential{Tier: 1, Value: "k"}))
	require.Error(t, err)
	assert.Equal(t, srapi.CodeInsufficientTier, srapi.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "bg param"))

	b, err := op.Bind(Values{"username": "a", "bg": "u"}, WithCredential(Credential{Tier: 2, Value: "k"}))
	require.NoError(t, err)
	assert.Equal(t, "premium/rankcard?username=a&key=k&bg=u", b.URL())

	// An inline key has an unknown tier, which the server enforces.
	_, err = op.Bind(Values{"username": "a", "bg": "u", "key": "k"})
	require.NoError(t, err)

	// Gated but absent is fine at any tier.
	_, err = op.Bind(Values{"username": "a"}, WithCredential(Credential{Tier: 1, Value: "k"}))
	require.NoError(t, err)
}

func TestBind_GatedWithoutKeyParameter(t *testing.T) {
	op := New("x", Param("bg", Optional(), Tier(1)))

	_, err := op.Bind(Values{"bg": "u"})
	require.Error(t, err)
	assert.Equal(t, srapi.CodeInsufficientTier, srapi.CodeOf(err))

	_, err = op.Bind(Values{"bg": "u"}, WithCredential(Credential{Tier: 1, Value: "k"}))
	require.NoError(t, err)
}
