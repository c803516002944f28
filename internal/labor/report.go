package labor

import (
	"fmt"
	"io"

	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
)

const (
	LabelOutboundFB     = "Outbound F&B Battery Jack"
	LabelDRP            = "DRP Battery Jack"
	LabelInbound        = "Inbound Battery Jack"
	LabelPalletHandling = "Pallet Handling Battery Jack"
	LabelManualLabor    = "Manual Labor"
	LabelNWPETJacks     = "NW PET Battery Jack"
	LabelNWPETLabor     = "NW PET Labor"
)

type Line struct {
	Label string
	Value string
}

type Section struct {
	Title string
	Lines []Line
}

// Sections 将输出按F&B与Waters分组，供文本与网页共用
func Sections(demand *core.LaborDemand) []Section {
	return []Section{
		{
			Title: "F&B",
			Lines: []Line{
				{LabelOutboundFB, demand.OutboundFBJacks.String()},
				{LabelDRP, fmt.Sprint(demand.DRPJacks)},
				{LabelInbound, fmt.Sprint(demand.InboundJacks)},
				{LabelPalletHandling, fmt.Sprint(demand.PalletHandlingJacks)},
				{LabelManualLabor, fmt.Sprint(demand.ManualLabor)},
			},
		},
		{
			Title: "Waters",
			Lines: []Line{
				{LabelNWPETJacks, fmt.Sprint(demand.NWPETJacks)},
				{LabelNWPETLabor, fmt.Sprint(demand.NWPETLabor)},
			},
		},
	}
}

func WriteReport(out io.Writer, demand *core.LaborDemand) error {
	if _, err := fmt.Fprintln(out, "Optimized Labor Demand"); err != nil {
		return errors.Wrap(err, "写入报告出错")
	}
	for _, section := range Sections(demand) {
		if _, err := fmt.Fprintf(out, "\n%s\n", section.Title); err != nil {
			return errors.Wrap(err, "写入报告出错")
		}
		for _, line := range section.Lines {
			if _, err := fmt.Fprintf(out, "%s: %s\n", line.Label, line.Value); err != nil {
				return errors.Wrap(err, "写入报告出错")
			}
		}
	}
	return nil
}
