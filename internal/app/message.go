package app

import (
	"apt_subscription_bot/internal/domain/announcement"
	"fmt"
	"strings"
)

const (
	// NoAnnouncementsMessage is sent when the provider returned nothing for the window.
	NoAnnouncementsMessage = "다음 주 청약 접수 예정 아파트가 없습니다."

	unknownValue     = "정보 없음"
	defaultDetailURL = "https://www.applyhome.co.kr/"
)

var houseNameCleaner = strings.NewReplacer("[", "", "]", "")

// FormatMessage renders the announcements as a Markdown Telegram message.
//
// Records whose reception opened before thresholdDate are hidden. Dates are
// zero-padded YYYY-MM-DD, so plain string comparison orders them correctly.
// A record without an open date is never hidden.
func FormatMessage(set *announcement.Set, thresholdDate string) string {
	if set.IsEmpty() {
		return NoAnnouncementsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*조회 기간*: %s 이후\n\n*이번 주 이후 청약 접수 예정 아파트:*\n\n", thresholdDate)

	for _, r := range IncludedRecords(set, thresholdDate) {
		writeBlock(&b, r)
	}
	return b.String()
}

// IncludedRecords returns the records FormatMessage would render, in order.
func IncludedRecords(set *announcement.Set, thresholdDate string) []announcement.Record {
	if set.IsEmpty() {
		return nil
	}
	var out []announcement.Record
	for _, r := range set.Data {
		if !opensBefore(r, thresholdDate) {
			out = append(out, r)
		}
	}
	return out
}

func opensBefore(r announcement.Record, thresholdDate string) bool {
	return r.ReceptionOpen != "" && r.ReceptionOpen < thresholdDate
}

func writeBlock(b *strings.Builder, r announcement.Record) {
	fmt.Fprintf(b, "*주택구분*: %s\n", orUnknown(r.HouseCategoryName))
	fmt.Fprintf(b, "*주택명*: %s\n", houseNameCleaner.Replace(orUnknown(r.HouseName)))
	fmt.Fprintf(b, "*청약접수*: %s ~ %s\n", orUnknown(r.ReceptionOpen), orUnknown(r.ReceptionClose))
	fmt.Fprintf(b, "*지역명*: %s\n", orUnknown(r.RegionName))
	fmt.Fprintf(b, "*청약홈 보기*: [상세보기](%s)\n\n", orDefault(r.DetailURL, defaultDetailURL))
}

func orUnknown(v string) string {
	return orDefault(v, unknownValue)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
