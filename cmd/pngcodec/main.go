// Command pngcodec inspects and converts PNG files using the decoder
// in this module.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/cocosip/go-png-codec/codec"
	"github.com/cocosip/go-png-codec/png"
)

var skipCRC bool

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCommand := &cobra.Command{
		Use:   "pngcodec",
		Short: "Decode and inspect PNG files",
	}
	rootCommand.PersistentFlags().BoolVar(&skipCRC, "skip-crc", false, "tolerate chunks with bad CRC-32")

	infoCommand := &cobra.Command{
		Use:   "info <file.png>",
		Short: "Print image metadata",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data := mustRead(args[0])
			im, err := png.DecodeWithOptions(data, decodeOptions())
			if err != nil {
				log.Fatal().Err(err).Str("file", args[0]).Msg("decode failed")
			}
			fmt.Printf("%s: %dx%d %s, %d-bit, interlace=%v\n",
				args[0], im.Header.Width, im.Header.Height,
				im.Header.ColorType, im.Header.BitDepth,
				im.Header.Interlace == png.InterlaceAdam7)
			if im.Palette != nil {
				fmt.Printf("palette: %d entries\n", len(im.Palette))
			}
		},
	}
	rootCommand.AddCommand(infoCommand)

	bmpCommand := &cobra.Command{
		Use:   "bmp <in.png> <out.bmp>",
		Short: "Decode a PNG and save the raster as BMP",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			data := mustRead(args[0])
			im, err := png.DecodeWithOptions(data, decodeOptions())
			if err != nil {
				log.Fatal().Err(err).Str("file", args[0]).Msg("decode failed")
			}
			std, err := im.StdImage()
			if err != nil {
				log.Fatal().Err(err).Msg("raster conversion failed")
			}

			out, err := os.Create(args[1])
			if err != nil {
				log.Fatal().Err(err).Str("file", args[1]).Msg("create failed")
			}
			defer out.Close()
			if err := bmp.Encode(out, std); err != nil {
				log.Fatal().Err(err).Msg("bmp encode failed")
			}
			log.Info().Str("file", args[1]).Msg("wrote BMP")
		},
	}
	rootCommand.AddCommand(bmpCommand)

	rawCommand := &cobra.Command{
		Use:   "raw <in> <out.raw>",
		Short: "Dump decoded samples as raw bytes, sniffing the input format",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			data := mustRead(args[0])
			c, err := codec.Sniff(data)
			if err != nil {
				log.Fatal().Err(err).Str("file", args[0]).Msg("unrecognized format")
			}
			log.Info().Str("codec", c.Name()).Msg("format detected")

			res, err := c.Decode(data)
			if err != nil {
				log.Fatal().Err(err).Msg("decode failed")
			}
			if err := os.WriteFile(args[1], res.PixelData, 0644); err != nil {
				log.Fatal().Err(err).Str("file", args[1]).Msg("write failed")
			}
			log.Info().
				Int("width", res.Width).
				Int("height", res.Height).
				Int("components", res.Components).
				Int("bitDepth", res.BitDepth).
				Int("bytes", len(res.PixelData)).
				Msg("wrote raw samples")
		},
	}
	rootCommand.AddCommand(rawCommand)

	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func decodeOptions() png.DecodeOptions {
	return png.DecodeOptions{SkipCRC: skipCRC}
}

func mustRead(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("read failed")
	}
	return data
}
