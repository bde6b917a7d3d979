package argon2id

import (
	"errors"
	"strings"
	"testing"
)

var testParams = ArgonParams{
	Memory:      16 * 1024,
	Iterations:  1,
	Parallelism: 2,
	SaltLength:  DefaultSaltLength,
	KeyLength:   DefaultKeyLength,
}

func TestEncodeHashWithSalt(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := EncodeHashWithSalt("hunter2", testParams, salt)

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=16384,t=1,p=2$") {
		t.Errorf("EncodeHashWithSalt() = %q, unexpected prefix", encoded)
	}
	if again := EncodeHashWithSalt("hunter2", testParams, salt); again != encoded {
		t.Errorf("EncodeHashWithSalt() not deterministic: %q != %q", again, encoded)
	}
}

func TestDecodeHash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := EncodeHashWithSalt("hunter2", testParams, salt)

	p, gotSalt, hash, err := DecodeHash(encoded)
	if err != nil {
		t.Fatalf("DecodeHash() error = %v", err)
	}
	if *p != testParams {
		t.Errorf("DecodeHash() params = %+v, want %+v", *p, testParams)
	}
	if string(gotSalt) != string(salt) {
		t.Errorf("DecodeHash() salt = %q, want %q", gotSalt, salt)
	}
	if len(hash) != int(testParams.KeyLength) {
		t.Errorf("DecodeHash() hash length = %d, want %d", len(hash), testParams.KeyLength)
	}
}

func TestDecodeHash_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "empty", encoded: "", wantErr: ErrInvalidHash},
		{name: "other algorithm", encoded: "$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "other version", encoded: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrIncompatibleVersion},
		{name: "garbled params", encoded: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA", wantErr: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := DecodeHash(tt.encoded); !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeHash() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	encoded, err := EncodeHash("correct horse", testParams)
	if err != nil {
		t.Fatalf("EncodeHash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "match", password: "correct horse", want: true},
		{name: "mismatch", password: "battery staple", want: false},
		{name: "empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.password, encoded)
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	if DefaultParams.Parallelism != DefaultParallelism {
		t.Errorf("DefaultParams.Parallelism = %d, want %d", DefaultParams.Parallelism, DefaultParallelism)
	}
}

func TestNeedsRehash(t *testing.T) {
	encoded := EncodeHashWithSalt("hunter2", testParams, []byte("0123456789abcdef"))
	stronger := testParams
	stronger.Iterations = 3

	tests := []struct {
		name    string
		encoded string
		params  ArgonParams
		want    bool
	}{
		{name: "same params", encoded: encoded, params: testParams, want: false},
		{name: "changed params", encoded: encoded, params: stronger, want: true},
		{name: "undecodable", encoded: "plaintext", params: testParams, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsRehash(tt.encoded, tt.params); got != tt.want {
				t.Errorf("NeedsRehash() = %v, want %v", got, tt.want)
			}
		})
	}
}
