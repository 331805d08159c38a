package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkozlov/orderboard/internal/cli/formatter"
	"github.com/dkozlov/orderboard/internal/dates"
)

func (m boardModel) View() string {
	if !m.visible {
		return "Загрузка..."
	}

	var b strings.Builder
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// renderDays renders every visible day box stacked vertically.
func (m boardModel) renderDays() string {
	if len(m.days) == 0 {
		return formatter.StyleDim.Render("Нет данных")
	}

	boxWidth := m.width - 4
	if boxWidth < 30 {
		boxWidth = 30
	}

	var boxes []string
	for i, day := range m.days {
		bucket := m.buckets[dates.FormatKey(day)]

		selected := -1
		active := i == m.dayIdx
		if m.mode == modePickTarget {
			active = i == m.targetIdx
		} else if active {
			selected = m.orderIdx
		}

		boxes = append(boxes, formatter.DayBox(day, bucket, boxWidth, selected, active))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m boardModel) statusLine() string {
	if m.status != "" {
		return formatter.StyleRed.Render(m.status)
	}

	switch m.mode {
	case modeConfirm:
		return formatter.StyleHeader.Render("Обновить дату выдачи заказа? ") +
			formatter.StyleDim.Render("y - да, n/esc - нет (заказ будет перемещён в любом случае)")
	case modePickTarget:
		return formatter.StyleHeader.Render("Куда перенести "+m.moveOrder.OrderNumber+"? ") +
			formatter.StyleDim.Render("←/→ - выбрать день, enter - перенести, esc - отмена")
	}

	help := "←/→ день • ↑/↓ заказ • m перенести • space выдан • r обновить • q выход"
	if !m.editable {
		help = "только просмотр • " + help
	}
	return formatter.StyleDim.Render(help)
}
