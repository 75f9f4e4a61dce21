package output

// DefaultAssumptions lists the modelling assumptions rendered in detailed
// outputs.
var DefaultAssumptions = []string{
	"Census counts are in thousands and scaled by 1,000",
	"Separated people count as unmarried",
	"Widowed men are never counted as available",
	"Men from each older bracket within the age overlap count at 50%",
	"When older men are counted, half of a bracket's own men are treated as marrying younger",
	"The 4+ wives category is modelled as 4.5 wives per man",
}
