package model

// Board size limits
const (
	MinBoardSize = 3
	MaxBoardSize = 8
)

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Add returns the position offset by d
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the position offset by -d
func (p Position) Sub(d Position) Position {
	return Position{Row: p.Row - d.Row, Col: p.Col - d.Col}
}

// Move is a letter placed at a position
type Move struct {
	Position
	Letter Letter `json:"letter"`
}

// Segment is a completed S-O-S line. Start and End are the two S cells.
type Segment struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Player Player   `json:"player"`
}

// Board is a square grid of write-once cells
type Board struct {
	Size  int        // Grid dimension, fixed at creation
	Cells [][]Letter // Row-major: Cells[row][col], Empty when unoccupied
}

// ValidateBoardSize checks that n is within the supported range
func ValidateBoardSize(n int) error {
	if n < MinBoardSize || n > MaxBoardSize {
		return ErrInvalidBoardSize
	}
	return nil
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) (*Board, error) {
	if err := ValidateBoardSize(size); err != nil {
		return nil, err
	}
	cells := make([][]Letter, size)
	for i := range cells {
		cells[i] = make([]Letter, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}, nil
}

// InBounds returns true if the position is on the board
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Get returns the letter at the given position, or Empty if it is empty or off the board
func (b *Board) Get(pos Position) Letter {
	if !b.InBounds(pos) {
		return Empty
	}
	return b.Cells[pos.Row][pos.Col]
}

// Cell returns the letter at the given position
func (b *Board) Cell(pos Position) (Letter, error) {
	if !b.InBounds(pos) {
		return Empty, ErrOutOfBounds
	}
	return b.Cells[pos.Row][pos.Col], nil
}

// IsEmpty reports whether the cell at the given position is unoccupied
func (b *Board) IsEmpty(pos Position) (bool, error) {
	letter, err := b.Cell(pos)
	if err != nil {
		return false, err
	}
	return letter == Empty, nil
}

// Place writes a letter into an empty cell. It is the only way a board changes.
func (b *Board) Place(pos Position, letter Letter) error {
	if !b.InBounds(pos) {
		return ErrOutOfBounds
	}
	if b.Cells[pos.Row][pos.Col] != Empty {
		return ErrCellOccupied
	}
	if !letter.IsValid() {
		return ErrInvalidLetter
	}
	b.Cells[pos.Row][pos.Col] = letter
	return nil
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == Empty {
				count++
			}
		}
	}
	return count
}

// EmptyPositions lists the empty cells in row-major order
func (b *Board) EmptyPositions() []Position {
	var empty []Position
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == Empty {
				empty = append(empty, Position{Row: row, Col: col})
			}
		}
	}
	return empty
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Letter, len(b.Cells))
	for i, row := range b.Cells {
		cells[i] = make([]Letter, len(row))
		copy(cells[i], row)
	}
	return &Board{Size: b.Size, Cells: cells}
}

// Validate checks a board loaded from outside the engine: square, in range, only S/O/empty
func (b *Board) Validate() error {
	if err := ValidateBoardSize(b.Size); err != nil {
		return err
	}
	if len(b.Cells) != b.Size {
		return ErrInvalidBoardSize
	}
	for _, row := range b.Cells {
		if len(row) != b.Size {
			return ErrInvalidBoardSize
		}
		for _, letter := range row {
			if letter != Empty && !letter.IsValid() {
				return ErrInvalidLetter
			}
		}
	}
	return nil
}

// Rows renders each row as a string, using "." for empty cells
func (b *Board) Rows() []string {
	rows := make([]string, b.Size)
	for row := 0; row < b.Size; row++ {
		buf := make([]rune, b.Size)
		for col := 0; col < b.Size; col++ {
			if l := b.Cells[row][col]; l != Empty {
				buf[col] = rune(l)
			} else {
				buf[col] = '.'
			}
		}
		rows[row] = string(buf)
	}
	return rows
}
