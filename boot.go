package main

// bootProgram is run when no ROM is loaded. It draws "C8" in the middle of
// the screen using the built-in font and then spins.
var bootProgram = []byte{
	0x00, 0xE0, // 200: CLS
	0x60, 0x1C, // 202: LD V0, 28
	0x61, 0x0D, // 204: LD V1, 13
	0x62, 0x0C, // 206: LD V2, $C
	0xF2, 0x29, // 208: LD F, V2
	0xD0, 0x15, // 20A: DRW V0, V1, 5
	0x60, 0x22, // 20C: LD V0, 34
	0x62, 0x08, // 20E: LD V2, $8
	0xF2, 0x29, // 210: LD F, V2
	0xD0, 0x15, // 212: DRW V0, V1, 5
	0x12, 0x14, // 214: JP $214
}
