package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewTone(rate, 440, 880, 10*time.Millisecond, 0.5)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -0.5 || buf[i][0] > 0.5 {
				t.Fatalf("sample %d = %f, expected within volume", total+i, buf[i][0])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d channels differ", total+i)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(10 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, expected nil", s.Err())
	}
}

func TestToneDrained(t *testing.T) {
	s := NewTone(beep.SampleRate(8000), 100, 100, time.Millisecond, 1)
	buf := make([][2]float64, 1000)

	if n, ok := s.Stream(buf); !ok || n != 8 {
		t.Fatalf("Stream() = (%d, %v), expected (8, true)", n, ok)
	}
	if n, ok := s.Stream(buf); ok || n != 0 {
		t.Errorf("Stream() after drain = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer()
	// Not initialized: none of these may touch the speaker.
	p.Hit()
	p.Miss()
	p.GameOver()
	p.Close()
}
