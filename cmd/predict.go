/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/packagewjx/labor-demand/internal/labor"
	"github.com/packagewjx/labor-demand/internal/session"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	FlagPLE                  = "ple"
	FlagE1                   = "e1"
	FlagE2                   = "e2"
	FlagWaters               = "waters"
	FlagFBExpectedArrival    = "fb-expected-arrival"
	FlagFBOrders             = "fb-orders"
	FlagNWPETExpectedArrival = "nwpet-expected-arrival"
	FlagDRPPendingLoads      = "drp-pending-loads"
	FlagManualVehicles       = "manual-vehicles"
)

var liveInput core.LiveInput

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "根据输入计算各项叉车与人工需求",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return liveInput.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := sourceConfig().Open()
		if err != nil {
			return err
		}
		sess, err := session.New(source, nil)
		if err != nil {
			return err
		}

		err = labor.WriteReport(os.Stdout, sess.LaborDemand(liveInput))
		if err != nil {
			return errors.Wrap(err, "输出结果错误")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().BoolVar(&liveInput.Plants.PLE, FlagPLE, false, "Dairy & Juice工厂运行中")
	predictCmd.Flags().BoolVar(&liveInput.Plants.E1, FlagE1, false, "Egron-1工厂运行中")
	predictCmd.Flags().BoolVar(&liveInput.Plants.E2, FlagE2, false, "Egron-2工厂运行中")
	predictCmd.Flags().BoolVar(&liveInput.Plants.Waters, FlagWaters, false, "Waters工厂运行中")
	predictCmd.Flags().IntVar(&liveInput.FBExpectedArrival, FlagFBExpectedArrival, 0,
		"F&B预计到达车辆数")
	predictCmd.Flags().IntVar(&liveInput.FBOrders, FlagFBOrders, 0,
		"F&B订单数（Total OBDs）")
	predictCmd.Flags().IntVar(&liveInput.NWPETExpectedArrival, FlagNWPETExpectedArrival, 0,
		"NW PET预计到达车辆数")
	predictCmd.Flags().IntVar(&liveInput.DRPPendingLoads, FlagDRPPendingLoads, 0,
		"DRP待装载数")
	predictCmd.Flags().IntVar(&liveInput.ManualVehicles, FlagManualVehicles, 0,
		"人工卸货车辆数")
}
