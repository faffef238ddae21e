package service

import "github.com/hdngo/sheetcoach/internal/model"

// questionTemplate is one entry of the built-in question store used when the
// oracle is not configured or unreachable.
type questionTemplate struct {
	prompt         string
	category       string
	expectedAnswer string
	hints          []string
}

var questionTemplates = map[string][]questionTemplate{
	model.DifficultyBeginner: {
		{
			prompt:         "How would you calculate the total of a column of numbers, and what is the difference between SUM and AVERAGE?",
			category:       "formulas",
			expectedAnswer: "Use the SUM function, for example =SUM(A1:A100), to add the values in a range. AVERAGE divides that total by the count of numeric cells, so =AVERAGE(A1:A100) gives the arithmetic mean.",
			hints:          []string{"Think about the basic aggregation functions.", "Both take a cell range as their argument."},
		},
		{
			prompt:         "What is a cell reference, and when would you use an absolute reference instead of a relative one?",
			category:       "references",
			expectedAnswer: "A cell reference like A1 points a formula at another cell. Relative references shift when the formula is copied; an absolute reference such as $A$1 stays fixed, which matters when every copy of a formula must read the same cell, for example a tax rate.",
			hints:          []string{"The dollar sign changes copy behavior."},
		},
		{
			prompt:         "How do you sort a table by one column while keeping each row's data together?",
			category:       "data handling",
			expectedAnswer: "Select the whole table or let the application expand the selection, then sort by the chosen column. Sorting only the column itself tears rows apart, so the full data range must be included in the sort.",
			hints:          []string{"What happens if you select just the one column before sorting?"},
		},
		{
			prompt:         "What does the COUNTIF function do, and can you give an example of using it?",
			category:       "formulas",
			expectedAnswer: "COUNTIF counts the cells in a range that meet a condition, for example =COUNTIF(B2:B50, \">100\") counts values above 100, or =COUNTIF(C2:C50, \"Paris\") counts rows for one city.",
			hints:          []string{"It combines counting with a single condition."},
		},
		{
			prompt:         "How would you apply conditional formatting to highlight all cells in a range that are above a threshold value?",
			category:       "formatting",
			expectedAnswer: "Select the range, open conditional formatting, choose a cell-value rule such as greater-than, enter the threshold, and pick a fill or font format. The formatting updates automatically as the values change.",
			hints:          []string{"It lives in the formatting menu, not in a formula."},
		},
		{
			prompt:         "What is the difference between deleting a cell's contents and deleting the cell itself?",
			category:       "basics",
			expectedAnswer: "Clearing contents empties the cell but leaves the grid unchanged. Deleting the cell removes it from the sheet and shifts neighbouring cells up or left, which can move data under formulas that reference those positions.",
			hints:          []string{"One of the two shifts other cells around."},
		},
	},
	model.DifficultyIntermediate: {
		{
			prompt:         "Explain how VLOOKUP works and one limitation of it that INDEX with MATCH avoids.",
			category:       "lookups",
			expectedAnswer: "VLOOKUP searches the first column of a table for a key and returns a value from a column to its right, for example =VLOOKUP(key, A:D, 3, FALSE). It cannot look to the left of the key column and breaks when columns are inserted; INDEX with MATCH addresses the return column independently, so it avoids both problems.",
			hints:          []string{"Think about which column VLOOKUP must search.", "What happens when someone inserts a column into the table?"},
		},
		{
			prompt:         "How would you build a pivot table to summarize sales by region and month, and what goes in each area of it?",
			category:       "pivot tables",
			expectedAnswer: "Insert a pivot table over the sales data, put region in rows, month in columns, and the sales amount in values with SUM as the aggregation. Filters can hold product or channel to slice the summary further.",
			hints:          []string{"Rows, columns, values, filters - what belongs where?"},
		},
		{
			prompt:         "What is the difference between SUMIF and SUMIFS, and when do you need the latter?",
			category:       "formulas",
			expectedAnswer: "SUMIF sums a range subject to one condition; SUMIFS allows multiple conditions across multiple ranges, for example summing sales where region is East and month is January. As soon as two criteria must hold at once, SUMIFS is required.",
			hints:          []string{"Count the number of conditions each supports."},
		},
		{
			prompt:         "How do you use data validation to restrict a column to a predefined list of values?",
			category:       "data handling",
			expectedAnswer: "Select the column, open data validation, choose list as the criterion, and point it at the allowed values, either typed in or referenced from a range. The cells then offer a dropdown and reject anything outside the list.",
			hints:          []string{"The list source can be a range on another sheet."},
		},
		{
			prompt:         "A formula returns #REF! after a colleague edited the sheet. What happened and how do you fix it?",
			category:       "troubleshooting",
			expectedAnswer: "#REF! means the formula references cells that were deleted, typically by removing rows or columns the formula pointed at. Fix it by restoring the deleted range or rewriting the reference; structured references or named ranges make formulas more robust against such edits.",
			hints:          []string{"The error appears after deleting rows or columns."},
		},
		{
			prompt:         "How would you create a chart that updates automatically as new rows of data are added?",
			category:       "charts",
			expectedAnswer: "Base the chart on a table or a dynamic named range rather than a fixed range. When data is formatted as a table, appended rows extend the table and the chart picks them up without editing the chart's source range.",
			hints:          []string{"Fixed ranges do not grow; what does?"},
		},
	},
	model.DifficultyAdvanced: {
		{
			prompt:         "Describe how you would combine INDEX, MATCH, and MATCH to do a two-dimensional lookup in a matrix of values.",
			category:       "lookups",
			expectedAnswer: "Use one MATCH to find the row position of the row key and a second MATCH to find the column position of the column key, then feed both into INDEX over the matrix: =INDEX(B2:M50, MATCH(rowkey, A2:A50, 0), MATCH(colkey, B1:M1, 0)).",
			hints:          []string{"INDEX can take both a row and a column number."},
		},
		{
			prompt:         "How would you detect and remove duplicate records when the duplicates differ in formatting or trailing spaces?",
			category:       "data cleaning",
			expectedAnswer: "Normalize the keys first, with TRIM and case functions such as LOWER in helper columns, then identify duplicates with COUNTIFS over the normalized keys or use the remove-duplicates tool on the cleaned columns. Comparing the raw values directly would miss near-duplicates.",
			hints:          []string{"Why does a plain remove-duplicates miss them?", "TRIM and LOWER are your friends."},
		},
		{
			prompt:         "When would you reach for a macro or script instead of formulas, and what are the trade-offs?",
			category:       "automation",
			expectedAnswer: "Macros suit repetitive multi-step manipulations, transformations that must write values, or workflows across many sheets, where formulas cannot act. The trade-offs are maintainability, security warnings, and the loss of the automatic recalculation model that pure formulas give.",
			hints:          []string{"Formulas compute values; what can they not do?"},
		},
		{
			prompt:         "How do you design a spreadsheet model so that assumptions, calculations, and outputs stay maintainable as it grows?",
			category:       "modeling",
			expectedAnswer: "Separate inputs, calculation layers, and reporting onto distinct sheets, keep one formula pattern per column, use named ranges for assumptions, and avoid hardcoding constants inside formulas. Document the flow so a reviewer can trace every output back to its inputs.",
			hints:          []string{"Think about separation of inputs and outputs."},
		},
		{
			prompt:         "Explain how array formulas or dynamic array functions change the way you aggregate filtered data, with an example.",
			category:       "formulas",
			expectedAnswer: "Dynamic array functions like FILTER and UNIQUE return whole ranges from one formula, so =SUM(FILTER(C2:C100, A2:A100=\"East\")) aggregates a condition without helper columns. Classic array formulas did the same with Ctrl-Shift-Enter semantics; spills make the results visible and composable.",
			hints:          []string{"FILTER composes with aggregation functions."},
		},
		{
			prompt:         "A workbook with tens of thousands of formula cells has become slow. How do you diagnose and improve its recalculation time?",
			category:       "performance",
			expectedAnswer: "Find the expensive patterns: volatile functions such as OFFSET and INDIRECT, whole-column references, and repeated lookups that can be cached in helper columns. Replace them with bounded ranges and single-pass lookups, consider manual calculation while editing, and move static results to values.",
			hints:          []string{"Volatile functions recalculate on every change."},
		},
	},
}
