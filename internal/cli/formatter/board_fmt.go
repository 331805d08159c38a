package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkozlov/orderboard/internal/board"
	"github.com/dkozlov/orderboard/internal/dates"
	"github.com/dkozlov/orderboard/internal/domain"
)

// DayHeader renders a day heading: weekday name, date key and, for non-empty
// buckets, the total area label. Empty days show no total.
func DayHeader(day time.Time, orders []domain.Order) string {
	name := StyleBold.Render(dates.DayName(day))
	date := StyleDim.Render("(" + dates.FormatKey(day) + ")")
	if len(orders) == 0 {
		return name + " " + date
	}
	total := StyleYellow.Render(board.TotalArea(orders) + " кв.м.")
	return fmt.Sprintf("%s %s - %s", name, date, total)
}

// OrderLine renders one order card line:
// number, optional prisadka suffix, milling type and area.
func OrderLine(o domain.Order) string {
	var b strings.Builder
	b.WriteString(marker(o.Status))
	b.WriteString(" ")
	b.WriteString(StyleFg.Render(o.OrderNumber))
	if o.PrisadkaNumber != "" {
		b.WriteString(StyleRed.Render("-" + o.PrisadkaNumber))
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf(". %s - %sкв.м.", o.MillingType, board.NormalizeArea(o.Area))))
	return b.String()
}

// OrderDetail renders the secondary card line: order date, client, payment
// and phone.
func OrderDetail(o domain.Order) string {
	parts := []string{o.OrderDate, o.Client, o.Payment}
	if o.Phone != "" {
		parts = append(parts, o.Phone)
	}
	return StyleDim.Render(strings.Join(parts, " • "))
}

// marker renders the completion checkbox for an order.
func marker(s domain.Status) string {
	if s.Delivered() {
		return StatusStyle(s).Render("[x]")
	}
	return StatusStyle(s).Render("[ ]")
}

// DayBox renders a whole day cell: header plus order cards, framed with a
// border that signals bucket state (all delivered, has orders, empty).
// selected highlights the order at that index with a cursor; pass -1 for
// none. active widens the border color to mark the day under the cursor.
func DayBox(day time.Time, orders []domain.Order, width, selected int, active bool) string {
	var b strings.Builder
	b.WriteString(DayHeader(day, orders))
	for i, o := range orders {
		cursor := "  "
		line := OrderLine(o)
		if i == selected {
			cursor = StyleHeader.Render("> ")
			line = StyleBold.Render(stripLine(o))
		}
		b.WriteString("\n")
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n    ")
		b.WriteString(OrderDetail(o))
	}

	borderColor := dayBorderColor(orders)
	if active {
		borderColor = ColorHeader
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		PaddingLeft(1).
		PaddingRight(1)
	if width > 0 {
		border = border.Width(width)
	}
	return border.Render(b.String())
}

// stripLine renders the selected order line without per-segment styling so
// the bold cursor style applies uniformly.
func stripLine(o domain.Order) string {
	box := "[ ]"
	if o.Status.Delivered() {
		box = "[x]"
	}
	num := o.OrderNumber
	if o.PrisadkaNumber != "" {
		num += "-" + o.PrisadkaNumber
	}
	return fmt.Sprintf("%s %s. %s - %sкв.м.", box, num, o.MillingType, board.NormalizeArea(o.Area))
}

func dayBorderColor(orders []domain.Order) lipgloss.Color {
	switch {
	case board.AllDelivered(orders):
		return ColorGreen
	case len(orders) > 0:
		return ColorBlue
	default:
		return ColorDim
	}
}

// FormatOrderTable renders the plain-text listing used by "orders list".
func FormatOrderTable(orders []domain.Order) string {
	if len(orders) == 0 {
		return StyleDim.Render("No orders loaded.")
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-12s %-12s %-12s %-10s %-8s %s",
		"ORDER", "PLANNED", "DELIVERY", "STATUS", "AREA", "CLIENT")))
	b.WriteString("\n")
	for _, o := range orders {
		num := o.OrderNumber
		if o.PrisadkaNumber != "" {
			num += "-" + o.PrisadkaNumber
		}
		line := fmt.Sprintf("%-12s %-12s %-12s %-10s %-8s %s",
			num, o.PlannedDate, o.DeliveryDate, string(o.Status), o.Area, o.Client)
		b.WriteString(StatusStyle(o.Status).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
