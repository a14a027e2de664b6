package domain

// URLSigner mints time-limited signed URLs for protected assets. A
// fresh URL is minted per call; possession after expiry grants nothing.
type URLSigner interface {
	SignedDownloadURL(userID string, trackID uint64, assetFile string) (string, error)
}
