package web

import (
	"github.com/xuri/excelize/v2"

	"github.com/sandcourt/beachrank/internal/service"
)

// renderStandingsXLSX builds a workbook with one sheet per group,
// ready to hand out to the players.
func renderStandingsXLSX(groups []service.GroupStandings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Место", "Игрок", "Игры", "Победы", "Поражения", "Очки", "За", "Против", "Разница"}
	for n, group := range groups {
		sheet := group.Stage
		if sheet == "" {
			sheet = "Таблица"
		}
		if n == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		for i, header := range headers {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return nil, err
			}
		}

		for i, row := range group.Rows {
			values := []any{
				row.Rank,
				row.Player.Name,
				row.Games,
				row.Wins,
				row.Losses,
				row.Points,
				row.PointsFor,
				row.PointsAgainst,
				row.PointsDiff,
			}
			for j, value := range values {
				cell, err := excelize.CoordinatesToCellName(j+1, i+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
