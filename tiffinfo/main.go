// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command tiffinfo prints the structure of TIFF and BigTIFF files as JSON.
//
// Usage:
//
//	tiffinfo [-warn] file-or-dir...
//
// Directories are walked recursively; only files with a .tif or .tiff extension are read.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bep/tiffmeta"
)

type frameInfo struct {
	Position      uint64
	Width         uint64
	Height        uint64
	Samples       uint64
	BitsPerSample []uint64
	Compression   string
	Tiled         bool
	Tags          map[string]string
}

type fileInfo struct {
	Filename  string
	ByteOrder string
	Variant   string
	Frames    []frameInfo
	Error     string `json:",omitempty"`
}

func main() {
	warn := flag.Bool("warn", false, "log decoder warnings")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: tiffinfo [-warn] file-or-dir...")
	}

	warnf := func(format string, args ...any) {
		if *warn {
			log.Printf("warning: "+format, args...)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, arg := range flag.Args() {
		if err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || strings.HasPrefix(info.Name(), ".") {
				return nil
			}
			if path != arg && !isTIFF(path) {
				return nil
			}
			return enc.Encode(describe(path, warnf))
		}); err != nil {
			log.Fatal(err)
		}
	}
}

func isTIFF(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		return true
	}
	return false
}

func describe(filename string, warnf func(string, ...any)) fileInfo {
	fi := fileInfo{Filename: filename}

	f, err := tiffmeta.Open(tiffmeta.Options{Filename: filename, Warnf: warnf})
	if err != nil {
		fi.Error = err.Error()
		return fi
	}
	fi.ByteOrder = f.Header.ByteOrder.String()
	fi.Variant = f.Header.Variant.String()

	for i := 0; i < f.FrameCount(); i++ {
		d, err := f.ReadFrame(i)
		if err != nil {
			fi.Error = err.Error()
			return fi
		}
		frame, err := describeFrame(d)
		if err != nil {
			fi.Error = err.Error()
			return fi
		}
		fi.Frames = append(fi.Frames, frame)
	}

	return fi
}

func describeFrame(d tiffmeta.Directory) (frameInfo, error) {
	var (
		fr  = frameInfo{Position: d.Position, Tiled: d.IsTiled(), Tags: make(map[string]string)}
		err error
	)
	if fr.Width, err = d.Width(); err != nil {
		return fr, err
	}
	if fr.Height, err = d.Height(); err != nil {
		return fr, err
	}
	if fr.Samples, err = d.Samples(); err != nil {
		return fr, err
	}
	if fr.BitsPerSample, err = d.BitsPerSample(); err != nil {
		return fr, err
	}
	compression, err := d.Compression()
	if err != nil {
		return fr, err
	}
	fr.Compression = compression.String()

	for _, t := range d.Tags {
		if t.Value.Kind() == tiffmeta.KindASCII {
			s, err := tiffmeta.Text(t.Value)
			if err != nil {
				return fr, err
			}
			fr.Tags[t.ID.Name()] = s
			continue
		}
		fr.Tags[t.ID.Name()] = t.Value.String()
	}

	return fr, nil
}
