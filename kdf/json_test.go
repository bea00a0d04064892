package kdf_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"keymill/kdf"
)

func b64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// record builds a JSON session record from raw field snippets.
func record(fields ...string) []byte {
	return []byte("{" + strings.Join(fields, ",") + "}")
}

func contextField() string {
	return fmt.Sprintf(`"context":%q`, b64(make([]byte, kdf.ContextBytes)))
}

func keyField() string {
	return fmt.Sprintf(`"key":%q`, b64(make([]byte, kdf.MasterKeyBytes)))
}

func TestSessionRoundTrip(t *testing.T) {
	sess, err := kdf.NewSessionBuilder().
		Index(42).
		Context(kdf.MustContext([]byte("payments"))).
		RandomKey().
		BuildFull()
	require.NoError(t, err)

	data, err := json.Marshal(sess)
	require.NoError(t, err)

	var decoded kdf.Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, sess.Equal(&decoded))

	// The decoded session resumes exactly where the original would.
	wantBuf := make([]byte, 24)
	gotBuf := make([]byte, 24)
	wantIdx, err := sess.GenerateNextKey(wantBuf)
	require.NoError(t, err)
	gotIdx, err := decoded.GenerateNextKey(gotBuf)
	require.NoError(t, err)

	require.Equal(t, uint64(42), wantIdx)
	require.Equal(t, wantIdx, gotIdx)
	require.Equal(t, wantBuf, gotBuf)
}

func TestSessionMarshalCanonicalOrder(t *testing.T) {
	sess, err := kdf.NewSessionBuilder().Index(1).RandomContext().RandomKey().BuildFull()
	require.NoError(t, err)

	data, err := json.Marshal(sess)
	require.NoError(t, err)

	s := string(data)
	indexAt := strings.Index(s, `"index"`)
	contextAt := strings.Index(s, `"context"`)
	keyAt := strings.Index(s, `"key"`)
	require.True(t, indexAt >= 0 && contextAt >= 0 && keyAt >= 0)
	require.Less(t, indexAt, contextAt)
	require.Less(t, contextAt, keyAt)
}

func TestSessionDecodeFieldsInAnyOrder(t *testing.T) {
	var sess kdf.Session
	err := json.Unmarshal(record(keyField(), `"index":7`, contextField()), &sess)
	require.NoError(t, err)
	require.Equal(t, uint64(7), sess.Index())
}

func TestSessionDecodeRejectsUnknownField(t *testing.T) {
	var sess kdf.Session
	err := json.Unmarshal(record(`"index":1`, contextField(), keyField(), `"nonce":"AAAA"`), &sess)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown field "nonce"`)
	require.Contains(t, err.Error(), `"index"`)
	require.Contains(t, err.Error(), `"context"`)
	require.Contains(t, err.Error(), `"key"`)
}

func TestSessionDecodeRejectsShortRecord(t *testing.T) {
	var sess kdf.Session
	err := json.Unmarshal(record(`"index":1`, contextField()), &sess)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 fields, want 3")
	require.Contains(t, err.Error(), `missing field "key"`)

	err = json.Unmarshal(record(keyField()), &sess)
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing field "index"`)
}

func TestSessionDecodeRejectsDuplicateField(t *testing.T) {
	var sess kdf.Session
	err := json.Unmarshal(record(`"index":1`, `"index":2`, keyField()), &sess)
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate field "index"`)
}

func TestSessionDecodeRejectsWrongSecretLength(t *testing.T) {
	var sess kdf.Session
	short := fmt.Sprintf(`"key":%q`, b64(make([]byte, kdf.MasterKeyBytes-1)))
	err := json.Unmarshal(record(`"index":1`, contextField(), short), &sess)
	require.Error(t, err)
	require.Contains(t, err.Error(), "want 32 bytes, got 31")
}

func TestSessionDecodeRejectsNonObject(t *testing.T) {
	var sess kdf.Session
	err := json.Unmarshal([]byte(`[1,2,3]`), &sess)
	require.Error(t, err)
}
