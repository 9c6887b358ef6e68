package invcommon

import (
	"bytes"
	"testing"
)

func TestSealUnsealCredential(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		passphrase string
		wantErr    bool
	}{
		{
			name:       "empty credential",
			data:       []byte{},
			passphrase: "rack-room-42",
			wantErr:    true,
		},
		{
			name:       "snmp community string",
			data:       []byte("n0t-public"),
			passphrase: "rack-room-42",
			wantErr:    false,
		},
		{
			name:       "binary key material",
			data:       []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05},
			passphrase: "rack-room-42",
			wantErr:    false,
		},
		{
			name:       "long credential",
			data:       bytes.Repeat([]byte("ssh-ed25519 AAAA... admin@switch "), 50),
			passphrase: "rack-room-42",
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := SealCredential(tt.data, tt.passphrase)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SealCredential() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if bytes.Equal(sealed, tt.data) {
				t.Error("sealed blob is identical to input")
			}
			if sealed[0] != sealFormatVersion {
				t.Errorf("format version = %d, want %d", sealed[0], sealFormatVersion)
			}

			plain, err := UnsealCredential(sealed, tt.passphrase)
			if err != nil {
				t.Fatalf("UnsealCredential() error = %v", err)
			}
			if !bytes.Equal(plain, tt.data) {
				t.Error("round trip did not recover the credential")
			}

			if _, err := UnsealCredential(sealed, "wrong-passphrase"); err == nil {
				t.Error("unseal with wrong passphrase should fail")
			}
		})
	}
}

func TestUnsealCredentialMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{name: "nil", blob: nil},
		{name: "too short", blob: []byte{sealFormatVersion, 0x01, 0x02}},
		{name: "bad version", blob: append([]byte{0x7f}, bytes.Repeat([]byte{0}, sealMinBlobSize)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnsealCredential(tt.blob, "x"); err == nil {
				t.Error("expected error for malformed blob")
			}
		})
	}
}
