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
	"fmt"
	"os"
	"sort"

	"github.com/packagewjx/labor-demand/internal/model"
	"github.com/packagewjx/labor-demand/internal/session"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const CoefficientFileFlag = "coefficientFile"

var (
	coefficientFile      string
	coefficientPrecision int
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "训练模型并输出评估结果与Lasso系数",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := sourceConfig().Open()
		if err != nil {
			return err
		}
		sess, err := session.New(source, &session.Config{Evaluate: true})
		if err != nil {
			return err
		}
		if err = sess.Models().Validate(); err != nil {
			return errors.Wrap(err, "模型训练失败")
		}

		ref := sess.Reference()
		columns := make([]string, 0, len(ref))
		for col := range ref {
			columns = append(columns, col)
		}
		sort.Strings(columns)
		fmt.Println("75分位数：")
		for _, col := range columns {
			fmt.Printf("  %s: %.4f\n", col, ref[col])
		}

		if evaluation := sess.Evaluation(); evaluation != nil {
			fmt.Printf("测试集评估：%s\n", evaluation)
		}

		lasso, ok := sess.Models().Main.(*model.LassoRegressor)
		if !ok {
			return fmt.Errorf("主模型不是Lasso")
		}
		out := os.Stdout
		if coefficientFile != "" {
			out, err = os.Create(coefficientFile)
			if err != nil {
				return errors.Wrap(err, "创建输出文件错误")
			}
			defer func() {
				_ = out.Close()
			}()
		}
		err = model.OutputCoefficients(out, lasso, core.FeatureColumns, coefficientPrecision)
		if err != nil {
			return errors.Wrap(err, "输出系数错误")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().StringVarP(&coefficientFile, CoefficientFileFlag, "o", "",
		"Lasso系数的输出文件，为空时输出到标准输出")
	trainCmd.Flags().IntVarP(&coefficientPrecision, OutputPrecisionFlag, "p", 6,
		"系数输出精度")
}
