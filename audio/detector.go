package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/shiptapper/parameter"
)

var (
	rate     = strconv.Itoa(parameter.AudioSampleRate)
	channels = strconv.Itoa(parameter.AudioChannels)
	latency  = strconv.Itoa(int(parameter.AudioBufferDuration.Milliseconds()))
)

// pipeBackends lists exec-based players in preference order, all reading raw s16le from stdin
var pipeBackends = []BackendConfig{
	{Type: BackendPulse, Name: "pacat", Args: []string{
		"--raw", "--format=s16le", "--rate=" + rate, "--channels=" + channels,
		"--latency-msec=" + latency, "--playback",
	}},
	{Type: BackendPipeWire, Name: "pw-cat", Args: []string{
		"--playback", "--format=s16", "--rate=" + rate, "--channels=" + channels,
		"--latency=" + latency + "ms", "-",
	}},
	{Type: BackendALSA, Name: "aplay", Args: []string{
		"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", channels, "-q",
	}},
	{Type: BackendSoX, Name: "play", Args: []string{
		"-t", "raw", "-e", "signed", "-b", "16", "-c", channels, "-r", rate, "-", "-d", "-q",
	}},
	{Type: BackendFFplay, Name: "ffplay", Args: []string{
		"-nodisp", "-autoexit", "-f", "s16le", "-ac", channels, "-ar", rate,
		"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet",
	}},
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// DetectBackend returns the first available backend
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay > OSS
func DetectBackend() (*BackendConfig, error) {
	for _, b := range pipeBackends {
		if path, err := lookPath(b.Name); err == nil {
			found := b
			found.Path = path
			found.Args = append([]string(nil), b.Args...)
			return &found, nil
		}
	}

	// FreeBSD OSS takes a direct device write
	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
