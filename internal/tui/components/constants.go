package components

const (
	laneBorderRows = 2 // top + bottom border
	laneHeaderRows = 2 // lane title + blank spacer
	cardBorderRows = 2 // top + bottom border
	cardFixedRows  = 2 // title + people label
	laneHPadding   = 1 // left and right padding inside a lane

	// LaneCardTop is the row offset of the first card inside a lane box
	LaneCardTop = 1 + laneHeaderRows
	// LaneOverhead is the number of lane rows not available to cards
	LaneOverhead = laneBorderRows + laneHeaderRows
)
