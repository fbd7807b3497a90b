// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
)

func (t *Toolset) registerPrompts(rt *realestate.Runtime) {
	rt.AddPrompt(&mcp.Prompt{
		Name: "analyze_region",
		Description: "Guide a full market analysis for one region: prices, rents, " +
			"jeonse ratio, and affordability.",
		Arguments: []*mcp.PromptArgument{
			{Name: "region", Description: "Region name, e.g. 마포구 or 서울 마포구", Required: true},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		region := req.Params.Arguments["region"]
		text := fmt.Sprintf("Analyze the real-estate market of %s.\n"+
			"1. Resolve the region with get_region_code and the current month with get_current_year_month.\n"+
			"2. Fetch apartment sales with get_apartment_trades and leases with get_apartment_rent for that region and month.\n"+
			"3. Compute the jeonse ratio: rent summary.median_deposit_10k divided by trade summary.median_price_10k.\n"+
			"4. For the price trend, repeat step 2 for each of the 6 preceding months.\n"+
			"5. Judge affordability with calculate_loan_payment on the median price and summarize the findings in Korean.",
			region)
		return &mcp.GetPromptResult{
			Messages: []*mcp.PromptMessage{
				{Role: "user", Content: &mcp.TextContent{Text: text}},
			},
		}, nil
	})
}
