// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

// entry is one row of the legal district (법정동) code table: the 10-digit
// original code and the canonical full name. The table is read-only after
// process start.
type entry struct {
	code string
	name string
}

var table = []entry{
	{"1100000000", "서울특별시"},
	{"1111000000", "서울특별시 종로구"},
	{"1114000000", "서울특별시 중구"},
	{"1117000000", "서울특별시 용산구"},
	{"1120000000", "서울특별시 성동구"},
	{"1121500000", "서울특별시 광진구"},
	{"1123000000", "서울특별시 동대문구"},
	{"1126000000", "서울특별시 중랑구"},
	{"1129000000", "서울특별시 성북구"},
	{"1130500000", "서울특별시 강북구"},
	{"1132000000", "서울특별시 도봉구"},
	{"1135000000", "서울특별시 노원구"},
	{"1138000000", "서울특별시 은평구"},
	{"1141000000", "서울특별시 서대문구"},
	{"1144000000", "서울특별시 마포구"},
	{"1147000000", "서울특별시 양천구"},
	{"1150000000", "서울특별시 강서구"},
	{"1153000000", "서울특별시 구로구"},
	{"1154500000", "서울특별시 금천구"},
	{"1156000000", "서울특별시 영등포구"},
	{"1159000000", "서울특별시 동작구"},
	{"1162000000", "서울특별시 관악구"},
	{"1165000000", "서울특별시 서초구"},
	{"1168000000", "서울특별시 강남구"},
	{"1171000000", "서울특별시 송파구"},
	{"1174000000", "서울특별시 강동구"},
	{"2600000000", "부산광역시"},
	{"2611000000", "부산광역시 중구"},
	{"2614000000", "부산광역시 서구"},
	{"2617000000", "부산광역시 동구"},
	{"2620000000", "부산광역시 영도구"},
	{"2623000000", "부산광역시 부산진구"},
	{"2626000000", "부산광역시 동래구"},
	{"2629000000", "부산광역시 남구"},
	{"2632000000", "부산광역시 북구"},
	{"2635000000", "부산광역시 해운대구"},
	{"2638000000", "부산광역시 사하구"},
	{"2641000000", "부산광역시 금정구"},
	{"2644000000", "부산광역시 강서구"},
	{"2647000000", "부산광역시 연제구"},
	{"2650000000", "부산광역시 수영구"},
	{"2653000000", "부산광역시 사상구"},
	{"2671000000", "부산광역시 기장군"},
	{"2700000000", "대구광역시"},
	{"2711000000", "대구광역시 중구"},
	{"2714000000", "대구광역시 동구"},
	{"2717000000", "대구광역시 서구"},
	{"2720000000", "대구광역시 남구"},
	{"2723000000", "대구광역시 북구"},
	{"2726000000", "대구광역시 수성구"},
	{"2729000000", "대구광역시 달서구"},
	{"2771000000", "대구광역시 달성군"},
	{"2800000000", "인천광역시"},
	{"2811000000", "인천광역시 중구"},
	{"2814000000", "인천광역시 동구"},
	{"2817700000", "인천광역시 미추홀구"},
	{"2818500000", "인천광역시 연수구"},
	{"2820000000", "인천광역시 남동구"},
	{"2823700000", "인천광역시 부평구"},
	{"2824500000", "인천광역시 계양구"},
	{"2826000000", "인천광역시 서구"},
	{"2871000000", "인천광역시 강화군"},
	{"2872000000", "인천광역시 옹진군"},
	{"2900000000", "광주광역시"},
	{"2911000000", "광주광역시 동구"},
	{"2914000000", "광주광역시 서구"},
	{"2915500000", "광주광역시 남구"},
	{"2917000000", "광주광역시 북구"},
	{"2920000000", "광주광역시 광산구"},
	{"3000000000", "대전광역시"},
	{"3011000000", "대전광역시 동구"},
	{"3014000000", "대전광역시 중구"},
	{"3017000000", "대전광역시 서구"},
	{"3020000000", "대전광역시 유성구"},
	{"3023000000", "대전광역시 대덕구"},
	{"3100000000", "울산광역시"},
	{"3111000000", "울산광역시 중구"},
	{"3114000000", "울산광역시 남구"},
	{"3117000000", "울산광역시 동구"},
	{"3120000000", "울산광역시 북구"},
	{"3171000000", "울산광역시 울주군"},
	{"3611000000", "세종특별자치시"},
	{"4100000000", "경기도"},
	{"4111000000", "경기도 수원시"},
	{"4111100000", "경기도 수원시 장안구"},
	{"4111300000", "경기도 수원시 권선구"},
	{"4111500000", "경기도 수원시 팔달구"},
	{"4111700000", "경기도 수원시 영통구"},
	{"4113000000", "경기도 성남시"},
	{"4113100000", "경기도 성남시 수정구"},
	{"4113300000", "경기도 성남시 중원구"},
	{"4113500000", "경기도 성남시 분당구"},
	{"4115000000", "경기도 의정부시"},
	{"4117000000", "경기도 안양시"},
	{"4119000000", "경기도 부천시"},
	{"4121000000", "경기도 광명시"},
	{"4122000000", "경기도 평택시"},
	{"4125000000", "경기도 동두천시"},
	{"4127000000", "경기도 안산시"},
	{"4128000000", "경기도 고양시"},
	{"4128100000", "경기도 고양시 덕양구"},
	{"4128500000", "경기도 고양시 일산동구"},
	{"4128700000", "경기도 고양시 일산서구"},
	{"4129000000", "경기도 과천시"},
	{"4131000000", "경기도 구리시"},
	{"4136000000", "경기도 남양주시"},
	{"4137000000", "경기도 오산시"},
	{"4139000000", "경기도 시흥시"},
	{"4141000000", "경기도 군포시"},
	{"4143000000", "경기도 의왕시"},
	{"4145000000", "경기도 하남시"},
	{"4146000000", "경기도 용인시"},
	{"4146100000", "경기도 용인시 처인구"},
	{"4146300000", "경기도 용인시 기흥구"},
	{"4146500000", "경기도 용인시 수지구"},
	{"4148000000", "경기도 파주시"},
	{"4150000000", "경기도 이천시"},
	{"4155000000", "경기도 안성시"},
	{"4157000000", "경기도 김포시"},
	{"4159000000", "경기도 화성시"},
	{"4161000000", "경기도 광주시"},
	{"4163000000", "경기도 양주시"},
	{"4165000000", "경기도 포천시"},
	{"4167000000", "경기도 여주시"},
	{"5111000000", "강원특별자치도 춘천시"},
	{"5113000000", "강원특별자치도 원주시"},
	{"5115000000", "강원특별자치도 강릉시"},
	{"4311000000", "충청북도 청주시"},
	{"4413000000", "충청남도 천안시"},
	{"5211000000", "전북특별자치도 전주시"},
	{"4611000000", "전라남도 목포시"},
	{"4613000000", "전라남도 여수시"},
	{"4711000000", "경상북도 포항시"},
	{"4713000000", "경상북도 경주시"},
	{"4812000000", "경상남도 창원시"},
	{"4825000000", "경상남도 김해시"},
	{"5011000000", "제주특별자치도 제주시"},
	{"5013000000", "제주특별자치도 서귀포시"},
}
