package chip8

const (
	/// MemorySize is the size of the CHIP-8 address space.
	///
	MemorySize = 0x1000

	/// ProgramStart is the address programs are loaded at and where
	/// execution begins.
	///
	ProgramStart = 0x200

	/// MaxProgramSize is the largest program that fits in memory.
	///
	MaxProgramSize = MemorySize - ProgramStart
)

/// Memory is the 4K address space addressable by CHIP-8. The first 512 bytes
/// are reserved for the font sprites, programs start at 0x200.
///
type Memory struct {
	ram [MemorySize]byte

	/// program is the last image passed to Load. It is copied back into ram
	/// whenever memory is reset.
	///
	program []byte
}

/// NewMemory returns memory with the font sprites loaded.
///
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

/// Load copies a program into memory at 0x200. Programs larger than 3584
/// bytes are rejected and memory is left unchanged.
///
func (m *Memory) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return &RomTooLargeError{Size: len(program)}
	}

	m.program = append(m.program[:0], program...)
	m.Reset()
	return nil
}

/// Reset clears memory, restores the font sprites and copies the loaded
/// program back to 0x200.
///
func (m *Memory) Reset() {
	m.ram = [MemorySize]byte{}
	copy(m.ram[:], font[:])
	copy(m.ram[ProgramStart:], m.program)
}

/// ProgramSize returns the size of the loaded program in bytes.
///
func (m *Memory) ProgramSize() int {
	return len(m.program)
}

/// Read returns the byte at addr.
///
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, &MemoryOutOfBoundsError{Address: int(addr)}
	}
	return m.ram[addr], nil
}

/// Write stores value at addr.
///
func (m *Memory) Write(addr uint16, value byte) error {
	if int(addr) >= MemorySize {
		return &MemoryOutOfBoundsError{Address: int(addr)}
	}
	m.ram[addr] = value
	return nil
}

/// Slice returns the n bytes starting at addr. The returned slice aliases
/// memory so writes to it are writes to memory. The whole range is checked
/// before anything is returned.
///
func (m *Memory) Slice(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if end > MemorySize {
		// report the first address that falls outside of memory
		bad := int(addr)
		if bad < MemorySize {
			bad = MemorySize
		}
		return nil, &MemoryOutOfBoundsError{Address: bad}
	}
	return m.ram[int(addr):end], nil
}
