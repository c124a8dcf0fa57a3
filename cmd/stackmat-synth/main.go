// cmd/stackmat-synth/main.go
//
// stackmat-synth writes a WAV file holding one timer frame per display value,
// for bench runs of stackmat-replicator without a timer attached.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/tamzrod/stackmat-replicator/internal/capture/wavfile"
	"github.com/tamzrod/stackmat-replicator/internal/decoder"
	"github.com/tamzrod/stackmat-replicator/internal/synth"
)

func main() {
	out := pflag.StringP("out", "o", "stackmat.wav", "Output WAV file.")
	sampleRate := pflag.Uint32P("sample-rate", "r", 44100, "Sample rate in Hz.")
	amplitude := pflag.Float32P("amplitude", "a", 0.5, "Peak amplitude, 0 to 1.")
	statusByte := pflag.StringP("status", "s", " ", "Status character sent before the digits.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: stackmat-synth [flags] VALUE...\n\nVALUE is six display digits, e.g. 013045 for 0:13.045.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	if len(*statusByte) != 1 {
		log.Fatal("status must be exactly one character", "status", *statusByte)
	}
	if *amplitude <= 0 || *amplitude > 1 {
		log.Fatal("amplitude out of range", "amplitude", *amplitude)
	}

	values := make([]decoder.DisplayValue, 0, pflag.NArg())
	for _, arg := range pflag.Args() {
		v, err := decoder.ParseDisplayValue(arg)
		if err != nil {
			log.Fatal("bad display value", "value", arg, "err", err)
		}
		values = append(values, v)
	}

	samples := synth.Signal(float64(*sampleRate), *amplitude, (*statusByte)[0], values...)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("create output", "err", err)
	}

	bw := bufio.NewWriter(f)
	if err := wavfile.Write(bw, *sampleRate, samples); err != nil {
		f.Close()
		log.Fatal("write wav", "err", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		log.Fatal("write wav", "err", err)
	}
	if err := f.Close(); err != nil {
		log.Fatal("close output", "err", err)
	}

	log.Info("wrote", "file", *out, "frames", len(values), "samples", len(samples), "sample_rate", *sampleRate)
}
