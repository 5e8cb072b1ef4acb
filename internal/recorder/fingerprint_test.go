package recorder_test

import (
	"errors"
	"testing"

	"cfpr-go/internal/recorder"
	"cfpr-go/internal/testutil"
)

func newTestFingerprinter() (*recorder.Fingerprinter, *testutil.MockFilesystemManager) {
	fsmgr := testutil.NewMockFilesystemManager()
	return recorder.NewFingerprinter(fsmgr, recorder.NewNopLogger()), fsmgr
}

func TestDigestHex(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "empty",
			data: "",
			want: "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		},
		{
			name: "abc",
			data: "abc",
			want: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recorder.DigestHex([]byte(tt.data))
			if got != tt.want {
				t.Errorf("DigestHex(%q) = %s, want %s", tt.data, got, tt.want)
			}
			if len(got) != 128 {
				t.Errorf("DigestHex() length = %d, want 128", len(got))
			}
		})
	}
}

func TestRecorderService_Fingerprint(t *testing.T) {
	t.Run("digest and size of content", func(t *testing.T) {
		fpr, fsmgr := newTestFingerprinter()
		fsmgr.AddFile("/data/archive.zip", []byte("zip bytes"))

		fp, err := fpr.Fingerprint("/data/archive.zip")
		if err != nil {
			t.Fatalf("Fingerprint() error = %v", err)
		}

		if fp.Digest != testutil.Blake2bHex([]byte("zip bytes")) {
			t.Errorf("Digest = %s, want BLAKE2b-512 of content", fp.Digest)
		}
		if fp.Size != "9" {
			t.Errorf("Size = %q, want %q", fp.Size, "9")
		}
	})

	t.Run("identical content gives identical identity", func(t *testing.T) {
		fpr, fsmgr := newTestFingerprinter()
		fsmgr.AddFile("/a/one.rar", []byte("same"))
		fsmgr.AddFile("/b/two.7z", []byte("same"))

		fp1, err := fpr.Fingerprint("/a/one.rar")
		if err != nil {
			t.Fatalf("Fingerprint() error = %v", err)
		}
		fp2, err := fpr.Fingerprint("/b/two.7z")
		if err != nil {
			t.Fatalf("Fingerprint() error = %v", err)
		}

		if fp1.Digest != fp2.Digest || fp1.Size != fp2.Size {
			t.Errorf("identities differ: %s/%s vs %s/%s", fp1.Digest, fp1.Size, fp2.Digest, fp2.Size)
		}
	})

	t.Run("one byte changes the digest", func(t *testing.T) {
		fpr, fsmgr := newTestFingerprinter()
		fsmgr.AddFile("/a.zip", []byte("content-a"))
		fsmgr.AddFile("/b.zip", []byte("content-b"))

		fp1, _ := fpr.Fingerprint("/a.zip")
		fp2, _ := fpr.Fingerprint("/b.zip")

		if fp1.Digest == fp2.Digest {
			t.Error("different content produced the same digest")
		}
		if fp1.Size != fp2.Size {
			t.Errorf("same-length content sizes differ: %s vs %s", fp1.Size, fp2.Size)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		fpr, fsmgr := newTestFingerprinter()
		fsmgr.AddFile("/empty.zip", nil)

		fp, err := fpr.Fingerprint("/empty.zip")
		if err != nil {
			t.Fatalf("Fingerprint() error = %v", err)
		}
		if fp.Size != "0" {
			t.Errorf("Size = %q, want %q", fp.Size, "0")
		}
		if fp.Digest != recorder.DigestHex(nil) {
			t.Errorf("Digest = %s, want digest of empty input", fp.Digest)
		}
	})

	t.Run("size comes from metadata", func(t *testing.T) {
		fpr, fsmgr := newTestFingerprinter()
		fsmgr.AddFileWithSize("/growing.zip", []byte("abc"), 5)

		fp, err := fpr.Fingerprint("/growing.zip")
		if err != nil {
			t.Fatalf("Fingerprint() error = %v", err)
		}
		if fp.Size != "5" {
			t.Errorf("Size = %q, want metadata size %q", fp.Size, "5")
		}
		if fp.Digest != testutil.Blake2bHex([]byte("abc")) {
			t.Errorf("Digest = %s, want digest of bytes read", fp.Digest)
		}
	})
}

func TestRecorderService_Fingerprint_Unavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*testutil.MockFilesystemManager)
		path  string
	}{
		{
			name:  "missing file",
			setup: func(*testutil.MockFilesystemManager) {},
			path:  "/no/such/file.zip",
		},
		{
			name:  "directory",
			setup: func(m *testutil.MockFilesystemManager) { m.AddDirectory("/data") },
			path:  "/data",
		},
		{
			name:  "empty path",
			setup: func(*testutil.MockFilesystemManager) {},
			path:  "",
		},
		{
			name: "read failure",
			setup: func(m *testutil.MockFilesystemManager) {
				m.AddFile("/locked.zip", []byte("x"))
				m.FailReads("/locked.zip", errors.New("permission denied"))
			},
			path: "/locked.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fpr, fsmgr := newTestFingerprinter()
			tt.setup(fsmgr)

			fp, err := fpr.Fingerprint(tt.path)
			if !errors.Is(err, recorder.ErrFileUnavailable) {
				t.Fatalf("Fingerprint() error = %v, want ErrFileUnavailable", err)
			}
			if fp != nil {
				t.Errorf("Fingerprint() = %+v, want nil", fp)
			}
		})
	}
}
