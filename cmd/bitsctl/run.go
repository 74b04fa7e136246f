package main

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/input"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) decoder() *packet.Decoder {
	return packet.NewDecoder(a.cfg.DecoderOptions())
}

func (a *app) runVersions(cmd *cobra.Command, args []string) error {
	var (
		lines []input.Line
		err   error
	)
	if len(args) == 1 {
		lines, err = input.ReadLines(args[0])
	} else {
		lines, err = input.Lines(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	dec := a.decoder()
	var total uint64
	skipped := 0
	for _, line := range lines {
		p, err := dec.DecodeHex(line.Text)
		if err != nil {
			if !a.cfg.SkipInvalid {
				return fmt.Errorf("line %d: %w", line.Number, err)
			}
			log.Warn().Int("line", line.Number).Err(err).Msg("skipping undecodable packet")
			skipped++
			continue
		}
		sum := packet.VersionSum(p)
		log.Debug().Int("line", line.Number).Uint64("version_sum", sum).Int("packets", packet.Count(p)).Msg("decoded line")
		total += sum
	}
	if skipped > 0 {
		log.Info().Int("skipped", skipped).Int("lines", len(lines)).Msg("version sum finished with skipped lines")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
	return err
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	p, err := a.decodeWhole(cmd, args)
	if err != nil {
		return err
	}
	v, err := packet.Evaluate(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

func (a *app) runTree(cmd *cobra.Command, args []string) error {
	p, err := a.decodeWhole(cmd, args)
	if err != nil {
		return err
	}
	return packet.Format(cmd.OutOrStdout(), p)
}

func (a *app) decodeWhole(cmd *cobra.Command, args []string) (*packet.Packet, error) {
	var (
		hex string
		err error
	)
	if len(args) == 1 {
		hex, err = input.ReadString(args[0])
	} else {
		hex, err = input.String(cmd.InOrStdin())
	}
	if err != nil {
		return nil, err
	}
	p, err := a.decoder().DecodeHex(hex)
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("root", p).Int("packets", packet.Count(p)).Msg("decoded input")
	return p, nil
}
