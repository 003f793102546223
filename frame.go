// frame.go - VDP frame export for tests and tooling (not part of the core)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// msxPalette is the canonical 16-colour MSX1 text-mode palette. The core
// itself never interprets pattern bits as colour; this table exists only
// for this ambient export helper.
var msxPalette = [16]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{33, 200, 66, 255},
	{94, 220, 120, 255},
	{84, 85, 237, 255},
	{125, 118, 252, 255},
	{212, 82, 77, 255},
	{66, 235, 245, 255},
	{252, 85, 84, 255},
	{255, 121, 120, 255},
	{212, 193, 65, 255},
	{230, 206, 128, 255},
	{33, 176, 59, 255},
	{201, 91, 186, 255},
	{204, 204, 204, 255},
	{255, 255, 255, 255},
}

// RenderFrame walks every scanline of v and returns a 240x192 RGBA image
// (6 pixels per character cell, one per pattern bit 7..2; bits 1..0 are
// unused in text mode), foreground taken from msxPalette[15] and
// background from msxPalette[1], matching screen-mode 0's fixed
// two-colour text rendering.
func RenderFrame(v *VDP) *image.RGBA {
	const width = vdpTextCols * 6
	const height = vdpTextRows * 8

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fg := msxPalette[15]
	bg := msxPalette[1]

	for row := 0; row < height; row++ {
		line := v.RenderScanline(row)
		for col, bits := range line {
			for bit := 0; bit < 6; bit++ {
				x := col*6 + bit
				set := bits&(0x80>>uint(bit)) != 0
				if set {
					img.SetRGBA(x, row, fg)
				} else {
					img.SetRGBA(x, row, bg)
				}
			}
		}
	}
	return img
}

// UpscaleFrame nearest-neighbour scales src to width x height, using
// golang.org/x/image/draw so golden-file PNGs stay legible without
// introducing any new colours.
func UpscaleFrame(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
