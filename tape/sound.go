// This file is part of GopherAce.
//
// GopherAce is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAce is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAce.  If not, see <https://www.gnu.org/licenses/>.

package tape

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/logger"
)

// tag string used in calls to Log() when loading sound tapes.
const soundLogTag = "tape: sound"

// pcmData is a single channel of sound data.
type pcmData struct {
	sampleRate float64
	totalTime  float64 // in seconds

	// the left channel in the case of stereo source files
	data []float32
}

// decode a sound file into mono PCM data. the file extension selects the
// decoder.
func getPCM(env *environment.Environment, filename string, r io.ReadSeeker) (pcmData, error) {
	var p pcmData

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(r)
		if !dec.IsValidFile() {
			return p, fmt.Errorf("wav: not a valid wav file")
		}

		logger.Log(env, soundLogTag, "loading from wav file")

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		numChans := int(dec.NumChans)
		if numChans < 1 {
			return p, fmt.Errorf("wav: no channels")
		}

		p.data = make([]float32, 0, len(floatBuf.Data)/numChans)
		for i := 0; i < len(floatBuf.Data); i += numChans {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = float64(dec.SampleRate)

		dur, err := dec.Duration()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}
		p.totalTime = dur.Seconds()

	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}

		logger.Log(env, soundLogTag, "loading from mp3 file")

		// the decoded stream is always 16 bit little endian stereo. four
		// bytes per sample of which the first two are the left channel
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				p.data = append(p.data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				return p, fmt.Errorf("mp3: %w", err)
			}
		}

		p.sampleRate = float64(dec.SampleRate())
		p.totalTime = float64(len(p.data)) / p.sampleRate

	default:
		return p, fmt.Errorf("not a sound file (%s)", filename)
	}

	logger.Logf(env, soundLogTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(env, soundLogTag, "total time: %.02fs", p.totalTime)

	return p, nil
}
