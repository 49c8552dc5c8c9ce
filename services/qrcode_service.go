package services

import (
	"fmt"

	"fieldscore/config"

	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// QRCodeService renders check-in QR codes as PNGs. The encoded payload is the
// client URL the scanning phone should open.
type QRCodeService struct {
	clientUrl string
}

func NewQRCodeService() *QRCodeService {
	return &QRCodeService{clientUrl: config.ClientUrl}
}

// CourseCheckInPNG encodes the check-in link for a course
func (s *QRCodeService) CourseCheckInPNG(courseID string) ([]byte, error) {
	url := fmt.Sprintf("%s/checkin/course/%s", s.clientUrl, courseID)
	return qrcode.Encode(url, qrcode.Medium, qrCodeSize)
}

// UserCheckInPNG encodes a member's personal check-in code
func (s *QRCodeService) UserCheckInPNG(userID string) ([]byte, error) {
	url := fmt.Sprintf("%s/checkin/user/%s", s.clientUrl, userID)
	return qrcode.Encode(url, qrcode.Medium, qrCodeSize)
}
