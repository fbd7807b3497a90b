// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"fmt"
	"net/url"
)

// MOLIT actual-transaction endpoints (data.go.kr, 1613000).
const (
	aptTradeURL        = "https://apis.data.go.kr/1613000/RTMSDataSvcAptTrade/getRTMSDataSvcAptTrade"
	aptRentURL         = "https://apis.data.go.kr/1613000/RTMSDataSvcAptRent/getRTMSDataSvcAptRent"
	offiTradeURL       = "https://apis.data.go.kr/1613000/RTMSDataSvcOffiTrade/getRTMSDataSvcOffiTrade"
	offiRentURL        = "https://apis.data.go.kr/1613000/RTMSDataSvcOffiRent/getRTMSDataSvcOffiRent"
	villaTradeURL      = "https://apis.data.go.kr/1613000/RTMSDataSvcRHTrade/getRTMSDataSvcRHTrade"
	villaRentURL       = "https://apis.data.go.kr/1613000/RTMSDataSvcRHRent/getRTMSDataSvcRHRent"
	singleTradeURL     = "https://apis.data.go.kr/1613000/RTMSDataSvcSHTrade/getRTMSDataSvcSHTrade"
	singleRentURL      = "https://apis.data.go.kr/1613000/RTMSDataSvcSHRent/getRTMSDataSvcSHRent"
	commercialTradeURL = "https://apis.data.go.kr/1613000/RTMSDataSvcNrgTrade/getRTMSDataSvcNrgTrade"
)

// Applyhome subscription endpoints (odcloud.kr).
const (
	odcloudBaseURL          = "https://api.odcloud.kr/api"
	aptSubscriptionInfoPath = "/15101046/v1/uddi:14a46595-03dd-47d3-a418-d64e52820598"
	applyhomeStatBaseURL    = "https://api.odcloud.kr/api/ApplyhomeStatSvc/v1"
)

// Onbid public auction endpoints.
const (
	onbidBidResultListURL   = "http://apis.data.go.kr/B010003/OnbidCltrBidRsltListSrvc/getCltrBidRsltList"
	onbidBidResultDetailURL = "http://apis.data.go.kr/B010003/OnbidCltrBidRsltDtlSrvc/getCltrBidRsltDtl"
	onbidThingInfoListURL   = "http://openapi.onbid.co.kr/openapi/services/ThingInfoInquireSvc/getUnifyUsageCltr"
	onbidCodeInfoBaseURL    = "http://openapi.onbid.co.kr/openapi/services/OnbidCodeInfoInquireSvc"
	onbidCodeTopURL         = onbidCodeInfoBaseURL + "/getOnbidTopCodeInfo"
	onbidCodeMiddleURL      = onbidCodeInfoBaseURL + "/getOnbidMiddleCodeInfo"
	onbidCodeBottomURL      = onbidCodeInfoBaseURL + "/getOnbidBottomCodeInfo"
	onbidAddr1URL           = onbidCodeInfoBaseURL + "/getOnbidAddr1Info"
	onbidAddr2URL           = onbidCodeInfoBaseURL + "/getOnbidAddr2Info"
	onbidAddr3URL           = onbidCodeInfoBaseURL + "/getOnbidAddr3Info"
	onbidDtlAddrURL         = onbidCodeInfoBaseURL + "/getOnbidDtlAddrInfo"
)

// buildServiceKeyURL embeds a URL-encoded serviceKey directly in the query
// string, ahead of the remaining parameters. data.go.kr hands out keys that
// are already percent-encoded in part, so the key must never pass through
// url.Values (which would double-encode it relative to what the portal
// registered).
func buildServiceKeyURL(base, serviceKey string, params url.Values) string {
	encodedKey := url.QueryEscape(serviceKey)
	encoded := params.Encode()
	if encoded == "" {
		return base + "?serviceKey=" + encodedKey
	}
	return base + "?serviceKey=" + encodedKey + "&" + encoded
}

// buildMolitURL builds a MOLIT transaction API URL. Parameter order is kept
// stable for log readability.
func buildMolitURL(base, serviceKey, regionCode, yearMonth string, numOfRows int) string {
	return fmt.Sprintf("%s?serviceKey=%s&LAWD_CD=%s&DEAL_YMD=%s&numOfRows=%d&pageNo=1",
		base, url.QueryEscape(serviceKey), regionCode, yearMonth, numOfRows)
}
